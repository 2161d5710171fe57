package testutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/randomizer/pkg/testutil"
)

type mockTestingT struct {
	mock.Mock
	cleanups []func()
}

func (m *mockTestingT) Deadline() (time.Time, bool) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Bool(1)
}

func (m *mockTestingT) Cleanup(f func()) {
	m.Called(f)
	m.cleanups = append(m.cleanups, f)
}

func TestContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		m := new(mockTestingT)
		m.On("Deadline").Return(time.Time{}, false)
		m.On("Cleanup", mock.AnythingOfType("func()"))

		before := time.Now()
		ctx := testutil.Context(m)

		got, ok := ctx.Deadline()
		require.True(t, ok)
		require.WithinDuration(t, before.Add(testutil.DefaultTimeout), got, time.Second)
		m.AssertExpectations(t)
	})

	t.Run("with deadline", func(t *testing.T) {
		want := time.Now().Add(30 * time.Second)

		m := new(mockTestingT)
		m.On("Deadline").Return(want, true)
		m.On("Cleanup", mock.AnythingOfType("func()"))

		ctx := testutil.Context(m)

		got, ok := ctx.Deadline()
		require.True(t, ok)
		require.True(t, want.Equal(got))
	})

	t.Run("cleanup cancels", func(t *testing.T) {
		m := new(mockTestingT)
		m.On("Deadline").Return(time.Time{}, false)
		m.On("Cleanup", mock.Anything)

		ctx := testutil.Context(m)
		require.NoError(t, ctx.Err())

		for _, f := range m.cleanups {
			f()
		}
		require.Error(t, ctx.Err())
	})
}
