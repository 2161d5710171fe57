package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sergeizaitcev/randomizer/internal/configs"
	"github.com/sergeizaitcev/randomizer/pkg/commands"
	"github.com/sergeizaitcev/randomizer/pkg/entropy"
	"github.com/sergeizaitcev/randomizer/pkg/logging"
	"github.com/sergeizaitcev/randomizer/pkg/shuffle"
	"github.com/sergeizaitcev/randomizer/version"
)

func main() {
	commands.Main("shuffle", run)
}

func run(_ context.Context, c *configs.Shuffle, args []string) error {
	if c.Version {
		version.Print()
		return nil
	}

	logger := logging.New(os.Stderr, c.Level).With("source", c.Source.String())

	return execute(c, args, os.Stdin, os.Stdout, logger)
}

func execute(c *configs.Shuffle, args []string, stdin io.Reader, stdout io.Writer, logger *logging.Logger) error {
	items, err := readItems(c, args, stdin)
	if err != nil {
		return fmt.Errorf("read items: %w", err)
	}

	logger.Debug("shuffle started",
		"count", len(items),
		"copy", c.Copy,
		"block_size", c.BlockSize,
	)

	start := time.Now()

	items, err = shuffleItems(c.Randomizer(), items, c.Copy)
	if err != nil {
		switch {
		case errors.Is(err, entropy.ErrSource):
			logger.Error("entropy source is unavailable", "error", err)
		case errors.Is(err, entropy.ErrExhausted):
			logger.Error("entropy block is too small for the input",
				"error", err,
				"count", len(items),
				"need", entropy.ShuffleSize(len(items)),
			)
		}
		return fmt.Errorf("shuffle: %w", err)
	}

	logger.Debug("shuffle finished", "duration", time.Since(start))

	w := bufio.NewWriter(stdout)
	for _, item := range items {
		w.WriteString(item)
		w.WriteByte('\n')
	}
	return w.Flush()
}

// shuffleItems перемешивает items на месте или возвращает перемешанную копию.
// При ошибке возвращает исходные items.
func shuffleItems(r shuffle.Randomizer, items []string, copyItems bool) ([]string, error) {
	if copyItems {
		shuffled, err := shuffle.NewArray(r, items)
		if err != nil {
			return items, err
		}
		return shuffled, nil
	}
	return items, shuffle.InPlace(r, items)
}

// readItems возвращает позиционные аргументы, если они есть, иначе элементы
// из c.Input, разделённые c.Separator.
func readItems(c *configs.Shuffle, args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	r := stdin
	if c.Input != "-" {
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return []string{}, nil
	}

	items := strings.Split(string(b), c.Separator)
	if items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}

	return items, nil
}
