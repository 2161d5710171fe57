package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// DecodeTOML декодирует TOML-документ из r в v. Неизвестные ключи считаются
// ошибкой.
func DecodeTOML(r io.Reader, v any) (int64, error) {
	var buf bytes.Buffer

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(&buf)
	dec.DisallowUnknownFields()

	if err = dec.Decode(v); err != nil {
		return n, fmt.Errorf("decode config: %w", err)
	}

	return n, nil
}
