package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var defaultLogger = New(os.Stderr, LevelInfo)

func init() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
}

// Logger определяет регистратор логов.
type Logger struct {
	level Level
	log   zerolog.Logger
}

// New возвращает новый экземпляр Logger.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, log: zerolog.New(w)}
}

// Discard возвращает пустой Logger.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

// SetDefault заменяет регистратор, используемый функциями пакета.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// With возвращает копию Logger, которая добавляет пары ключ-значение a в
// каждое сообщение.
func (l *Logger) With(a ...any) *Logger {
	ctx := l.log.With()
	eachPair(a, func(key string, value any) {
		ctx = ctx.Interface(key, value)
	})
	return &Logger{level: l.level, log: ctx.Logger()}
}

// Enabled возвращает true, если уровень логирования разрешён.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Log записывает сообщение msg с парами ключ-значение a.
func (l *Logger) Log(level Level, msg string, a ...any) {
	if !l.Enabled(level) {
		return
	}

	ev := l.log.Log().
		Str("level", level.String()).
		Timestamp()

	eachPair(a, func(key string, value any) {
		if err, ok := value.(error); ok {
			ev = ev.AnErr(key, err)
			return
		}
		ev = ev.Any(key, value)
	})

	ev.Msg(msg)
}

func (l *Logger) Debug(msg string, a ...any) { l.Log(LevelDebug, msg, a...) }
func (l *Logger) Info(msg string, a ...any)  { l.Log(LevelInfo, msg, a...) }
func (l *Logger) Warn(msg string, a ...any)  { l.Log(LevelWarn, msg, a...) }
func (l *Logger) Error(msg string, a ...any) { l.Log(LevelError, msg, a...) }

// eachPair вызывает fn для каждой пары ключ-значение; нечётный хвост
// отбрасывается.
func eachPair(a []any, fn func(key string, value any)) {
	for i := 0; i+1 < len(a); i += 2 {
		key, ok := a[i].(string)
		if !ok {
			key = fmt.Sprint(a[i])
		}
		fn(key, a[i+1])
	}
}

// Debug записывает сообщение с уровнем debug.
func Debug(msg string, a ...any) {
	defaultLogger.Log(LevelDebug, msg, a...)
}

// Info записывает сообщение с уровнем info.
func Info(msg string, a ...any) {
	defaultLogger.Log(LevelInfo, msg, a...)
}

// Warn записывает сообщение с уровнем warn.
func Warn(msg string, a ...any) {
	defaultLogger.Log(LevelWarn, msg, a...)
}

// Error записывает сообщение с уровнем error.
func Error(msg string, a ...any) {
	defaultLogger.Log(LevelError, msg, a...)
}
