package configs

import (
	"errors"
	"flag"
	"io"

	"github.com/sergeizaitcev/randomizer/pkg/commands"
	"github.com/sergeizaitcev/randomizer/pkg/logging"
	"github.com/sergeizaitcev/randomizer/pkg/shuffle"
)

var DefaultShuffle = &Shuffle{
	Level:     logging.LevelInfo,
	Source:    shuffle.SourceCrypto,
	BlockSize: 0,
	Input:     "-",
	Separator: "\n",
	Copy:      false,
}

var (
	_ commands.Config     = (*Shuffle)(nil)
	_ commands.FileConfig = (*Shuffle)(nil)
)

// Shuffle определяет конфиг утилиты перемешивания.
type Shuffle struct {
	commands.UnimplementedConfig

	// Путь к файлу конфигурации.
	ConfigPath commands.ConfigPath `env:"CONFIG" toml:"-"`

	// Уровень логирования.
	//
	// По умолчанию "info".
	Level logging.Level `env:"LEVEL" toml:"level"`

	// Источник случайности: "fast" или "crypto".
	//
	// По умолчанию "crypto".
	Source shuffle.Source `env:"SOURCE" toml:"source"`

	// Размер фиксированного блока энтропии для источника "crypto". Если 0,
	// то блок подбирается под количество элементов.
	BlockSize int `env:"BLOCK_SIZE" toml:"block_size"`

	// Файл с элементами; "-" означает стандартный ввод.
	//
	// По умолчанию "-".
	Input string `env:"INPUT" toml:"input"`

	// Разделитель элементов во входных данных.
	//
	// По умолчанию "\n".
	Separator string `env:"SEPARATOR" toml:"separator"`

	// Перемешивать копию вместо исходной последовательности.
	Copy bool `env:"COPY" toml:"copy"`

	// Напечатать версию и выйти.
	Version bool `toml:"-"`
}

func (s *Shuffle) ConfigFile() (*commands.ConfigPath, string, string) {
	return &s.ConfigPath, "c", "CONFIG"
}

func (s *Shuffle) ReadFrom(r io.Reader) (int64, error) {
	return commands.DecodeTOML(r, s)
}

func (s *Shuffle) SetFlags(fs *flag.FlagSet) {
	fs.Var(&s.ConfigPath, "c", "path to config")
	fs.TextVar(&s.Level, "v", DefaultShuffle.Level, "logging level")
	fs.TextVar(&s.Source, "s", DefaultShuffle.Source, "randomness source: fast or crypto")
	fs.IntVar(&s.BlockSize, "block", DefaultShuffle.BlockSize, "fixed entropy block size in bytes (0 - sized to input)")
	fs.StringVar(&s.Input, "i", DefaultShuffle.Input, "input file (- for stdin)")
	fs.StringVar(&s.Separator, "sep", DefaultShuffle.Separator, "element separator")
	fs.BoolVar(&s.Copy, "copy", DefaultShuffle.Copy, "shuffle a copy of the input")
	fs.BoolVar(&s.Version, "version", false, "print version and exit")
}

func (s *Shuffle) Validate() error {
	if s.BlockSize < 0 {
		return errors.New("block size must be greater or equal than zero")
	}
	if s.BlockSize > 0 && s.Source != shuffle.SourceCrypto {
		return errors.New("block size is only supported by the crypto source")
	}
	if s.Separator == "" {
		return errors.New("separator must be not empty")
	}
	if s.Input == "" {
		return errors.New("input must be not empty")
	}
	return nil
}

// Randomizer возвращает Randomizer согласно конфигу.
func (s *Shuffle) Randomizer() shuffle.Randomizer {
	return s.Source.Randomizer(s.BlockSize)
}
