package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v10"
)

// ExecFunc определяет функцию выполнения командой; args содержит
// позиционные аргументы, оставшиеся после разбора флагов.
type ExecFunc[T Config] func(ctx context.Context, c T, args []string) error

// Command определяет команду выполнения.
type Command[T Config] struct {
	fs      *flag.FlagSet
	args    []string
	environ map[string]string
	exec    ExecFunc[T]
	config  T
}

// New возвращает новый экземпляр Command с аргументами os.Args.
func New[T Config](name string, exec ExecFunc[T]) *Command[T] {
	return &Command[T]{
		fs:      flag.NewFlagSet(name, flag.ContinueOnError),
		args:    cleanArgs(os.Args[1:]),
		environ: environ(os.Environ()),
		exec:    exec,
		config:  makeConfig[T](),
	}
}

func environ(kv []string) map[string]string {
	m := make(map[string]string, len(kv))
	for _, s := range kv {
		k, v, _ := strings.Cut(s, "=")
		m[k] = v
	}
	return m
}

// cleanArgs удаляет флаги go test.
func cleanArgs(args []string) []string {
	clean := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "-test.") || strings.HasPrefix(arg, "--test.") {
			continue
		}
		clean = append(clean, arg)
	}
	return clean
}

// Execute запускает команду и блокируется до её завершения.
func (cmd *Command[T]) Execute(ctx context.Context) error {
	if err := cmd.initConfig(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cmd.usage()
			return nil
		}
		return fmt.Errorf("failed to init config: %w", err)
	}
	if err := cmd.exec(ctx, cmd.config, cmd.fs.Args()); err != nil {
		return fmt.Errorf("failed to execute: %w", err)
	}
	return nil
}

// Execute запускает команду с обработкой сигналов и возвращает код выхода.
func Execute[T Config](name string, exec ExecFunc[T]) int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := New(name, exec).Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Main запускает команду и завершает процесс с ненулевым кодом, если
// команда вернула ошибку.
func Main[T Config](name string, exec ExecFunc[T]) {
	if code := Execute(name, exec); code != 0 {
		os.Exit(code)
	}
}

// initConfig инициализирует и валидирует конфигурацию.
func (cmd *Command[T]) initConfig() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("panic: %v", e)
		}
	}()

	// Отключение автоматического срабатывания Usage
	// в случае возникновения ошибки при парсинге флагов.
	cmd.fs.Usage = func() {}
	cmd.config.SetFlags(cmd.fs)

	if err = cmd.parseConfigFile(); err != nil {
		return fmt.Errorf("file parsing: %w", err)
	}
	if err = cmd.fs.Parse(cmd.args); err != nil {
		return fmt.Errorf("flag parsing: %w", err)
	}
	if err = cmd.parseEnv(); err != nil {
		return fmt.Errorf("env parsing: %w", err)
	}
	if err = cmd.config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	return nil
}

// usage выводит в cmd.fs.Output() формат использования команды.
func (cmd *Command[T]) usage() {
	fmt.Fprintf(cmd.fs.Output(), "Usage of %s:\n", cmd.fs.Name())
	cmd.fs.PrintDefaults()
}

// parseConfigFile читает файл конфигурации до разбора флагов, чтобы флаги
// и переменные окружения имели над ним приоритет. Путь из переменной
// окружения важнее пути из флага.
func (cmd *Command[T]) parseConfigFile() error {
	fc, ok := any(cmd.config).(FileConfig)
	if !ok {
		return nil
	}

	path, flagName, envKey := fc.ConfigFile()

	value := lookupArg(cmd.args, flagName)
	if v := cmd.environ[envKey]; v != "" {
		value = v
	}
	if value == "" {
		return nil
	}

	if err := path.Set(value); err != nil {
		return err
	}

	f, err := os.Open(path.String())
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err = fc.ReadFrom(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("reading a config from a file: %w", err)
	}

	return nil
}

// lookupArg возвращает значение флага name из args или пустую строку.
// Поддерживаются формы -name value, -name=value и те же с двумя дефисами.
func lookupArg(args []string, name string) string {
	if name == "" {
		return ""
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		arg = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v
		}
	}
	return ""
}

// parseEnv парсит переменные окружения.
func (cmd *Command[T]) parseEnv() error {
	return env.ParseWithOptions(cmd.config, env.Options{Environment: cmd.environ})
}
