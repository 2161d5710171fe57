package testutil

import (
	"context"
	"time"
)

// DefaultTimeout определяет время жизни контекста, если у теста нет дедлайна.
const DefaultTimeout = 15 * time.Second

type TestingT interface {
	Deadline() (time.Time, bool)
	Cleanup(func())
}

// Context возвращает контекст, который отменяется по дедлайну теста или по
// его завершению.
func Context(t TestingT) context.Context {
	deadline, ok := t.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultTimeout)
	}

	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	t.Cleanup(cancel)

	return ctx
}
