package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
)

// Config описывает конфигурацию команды.
//
// Значения Config имеют следующий приоритет (от высшего к низшему)
//
//  1. Переменные окружения
//  2. Флаги командной строки
//  3. Файл конфигурации
//  4. Значения по умолчанию
//
// Реализация Config обязательно должна быть указателем на структуру и
// обязательно должна встраивать в себя commands.UnimplementedConfig.
//
// Если Config предусматривает файл конфигурации, то он должен реализовывать
// интерфейс FileConfig, например:
//
//	type Config struct {
//		commands.UnimplementedConfig
//
//		ConfigPath commands.ConfigPath `env:"CONFIG"   toml:"-"`
//		MyField    string              `env:"MY_FIELD" toml:"my_field"`
//	}
//
//	func (c *Config) ConfigFile() (*commands.ConfigPath, string, string) {
//		return &c.ConfigPath, "c", "CONFIG"
//	}
//
//	func (c *Config) ReadFrom(r io.Reader) (int64, error) {
//		return commands.DecodeTOML(r, c)
//	}
//
//	func (c *Config) SetFlags(fs *flag.FlagSet) {
//		fs.Var(&c.ConfigPath, "c", "path to config")
//		fs.StringVar(&c.MyField, "f", "field", "my field")
//	}
type Config interface {
	// SetFlags устанавливает флаги командной строки и значения по умолчанию.
	SetFlags(fs *flag.FlagSet)

	// Validate возвращает ошибку, если конфиг не валиден.
	Validate() error

	mustEmbedding()
}

// FileConfig определяет конфиг, который может быть прочитан из файла.
type FileConfig interface {
	Config
	io.ReaderFrom

	// ConfigFile возвращает поле с путём к файлу конфигурации, имя флага и
	// имя переменной окружения, через которые этот путь передаётся.
	ConfigFile() (path *ConfigPath, flagName, envKey string)
}

var _ Config = (*UnimplementedConfig)(nil)

type UnimplementedConfig struct{}

func (UnimplementedConfig) SetFlags(*flag.FlagSet) {}
func (UnimplementedConfig) Validate() error        { return nil }
func (UnimplementedConfig) mustEmbedding()         {}

var _ flag.Value = (*ConfigPath)(nil)

// ConfigPath определяет путь к файлу конфигурации.
type ConfigPath string

// String возвращает путь к файлу конфигурации.
func (c *ConfigPath) String() string {
	if c == nil {
		return ""
	}
	return string(*c)
}

// Set устанавливает путь к файлу конфигурации.
func (c *ConfigPath) Set(value string) error {
	info, err := os.Stat(value)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("no such file: %s", value)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s must be a file", value)
	}
	*c = ConfigPath(value)
	return nil
}

// makeConfig создает и возвращает новый экземпляр T. T должен быть
// указателем на структуру.
func makeConfig[T Config]() T {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("commands: config must be a pointer to struct, got %s", rt))
	}
	return reflect.New(rt.Elem()).Interface().(T)
}
