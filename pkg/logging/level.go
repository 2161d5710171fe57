package logging

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	_ encoding.TextMarshaler   = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Level определяет уровень логирования.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

var levelNames = []struct {
	name  string
	level Level
}{
	{"debug", LevelDebug},
	{"info", LevelInfo},
	{"warn", LevelWarn},
	{"error", LevelError},
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText разбирает уровень вида "info" или "info+2"; регистр не
// учитывается.
func (l *Level) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		return errors.New("level is empty")
	}

	var offset Level

	if n := strings.IndexAny(s, "+-"); n >= 0 {
		if n == 0 || n == len(s)-1 {
			return errors.New("level offset is incorrect")
		}
		v, err := strconv.Atoi(s[n:])
		if err != nil {
			return fmt.Errorf("parse the level offset: %w", err)
		}
		offset = Level(v)
		s = s[:n]
	}

	for _, v := range levelNames {
		if v.name == s {
			*l = v.level + offset
			return nil
		}
	}

	return fmt.Errorf("level is invalid: %q", s)
}

func (l Level) String() string {
	str := func(base string, val Level) string {
		if val == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, val)
	}
	switch {
	case l < LevelInfo:
		return str("debug", l-LevelDebug)
	case l < LevelWarn:
		return str("info", l-LevelInfo)
	case l < LevelError:
		return str("warn", l-LevelWarn)
	default:
		return str("error", l-LevelError)
	}
}
