package shuffle

import (
	"encoding"
	"fmt"
	"strings"
)

var (
	_ encoding.TextMarshaler   = (*Source)(nil)
	_ encoding.TextUnmarshaler = (*Source)(nil)
)

// Source определяет вид источника случайности.
type Source uint8

const (
	SourceFast Source = iota
	SourceCrypto
)

// ParseSource преобразует строку в Source; регистр не учитывается.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "fast":
		return SourceFast, nil
	case "crypto":
		return SourceCrypto, nil
	default:
		return 0, fmt.Errorf("unknown source: %q", s)
	}
}

func (s Source) String() string {
	switch s {
	case SourceFast:
		return "fast"
	case SourceCrypto:
		return "crypto"
	default:
		return fmt.Sprintf("Source(%d)", uint8(s))
	}
}

func (s Source) MarshalText() ([]byte, error) {
	if s > SourceCrypto {
		return nil, fmt.Errorf("unknown source: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(text []byte) error {
	v, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Randomizer возвращает Randomizer для источника s. Для SourceCrypto
// blockSize задаёт Crypto.BlockSize.
func (s Source) Randomizer(blockSize int) Randomizer {
	if s == SourceCrypto {
		return Crypto{BlockSize: blockSize}
	}
	return Fast{}
}
