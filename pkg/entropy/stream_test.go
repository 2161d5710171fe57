package entropy_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/randomizer/pkg/entropy"
)

func TestShuffleSize(t *testing.T) {
	testCases := []struct {
		n    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 0},
		{2, 8},
		{5, 32},
		{6, 40},
		{100, 792},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, entropy.ShuffleSize(tc.n), "n=%d", tc.n)
	}
}

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestStream_WithoutRefill(t *testing.T) {
	r := bytes.NewReader(sequence(64))

	s, err := entropy.NewStream(r, 8, 0)
	require.NoError(t, err)
	require.Equal(t, 8, s.Len())
	require.Equal(t, 8, s.Drawn())

	b, err := s.Take(6)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5}, b)

	_, err = s.Take(3)
	require.ErrorIs(t, err, entropy.ErrExhausted)
	require.Equal(t, 8, s.Drawn(), "stream without refill must not read again")
}

func TestStream_Refill(t *testing.T) {
	r := bytes.NewReader(sequence(128))

	s, err := entropy.NewStream(r, 4, 16)
	require.NoError(t, err)

	b, err := s.Take(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, b)

	// Непотреблённый байт 3 должен быть выдан первым после дочитывания.
	b, err = s.Take(8)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4, 5, 6, 7, 8, 9, 10}, b)
	require.Equal(t, 4+16, s.Drawn())
	require.Equal(t, 9, s.Len())

	// Запрос больше размера дочитывания.
	b, err = s.Take(40)
	require.NoError(t, err)
	require.Equal(t, sequence(51)[11:], b)
	require.Equal(t, 4+16+31, s.Drawn())
	require.Zero(t, s.Len())
}

func TestStream_NoReuse(t *testing.T) {
	r := bytes.NewReader(sequence(255))

	s, err := entropy.NewStream(r, 5, 7)
	require.NoError(t, err)

	var got []byte
	for i := 0; i < 30; i++ {
		b, err := s.Take(i % 4)
		require.NoError(t, err)
		got = append(got, b...)
	}

	require.Equal(t, sequence(len(got)), got)
}

func TestStream_SourceError(t *testing.T) {
	sourceErr := errors.New("no entropy")

	t.Run("initial", func(t *testing.T) {
		_, err := entropy.NewStream(iotest.ErrReader(sourceErr), 8, 0)
		require.ErrorIs(t, err, entropy.ErrSource)
		require.ErrorIs(t, err, sourceErr)
		require.NotErrorIs(t, err, entropy.ErrExhausted)
	})

	t.Run("short read", func(t *testing.T) {
		_, err := entropy.NewStream(bytes.NewReader(sequence(3)), 8, 0)
		require.ErrorIs(t, err, entropy.ErrSource)
	})

	t.Run("refill", func(t *testing.T) {
		s, err := entropy.NewStream(bytes.NewReader(sequence(4)), 4, 8)
		require.NoError(t, err)

		_, err = s.Take(4)
		require.NoError(t, err)

		_, err = s.Take(1)
		require.ErrorIs(t, err, entropy.ErrSource)
		require.NotErrorIs(t, err, entropy.ErrExhausted)
	})

	t.Run("empty initial block", func(t *testing.T) {
		s, err := entropy.NewStream(iotest.ErrReader(sourceErr), 0, 0)
		require.NoError(t, err)
		require.Zero(t, s.Drawn())
	})
}

func TestStream_Adapter(t *testing.T) {
	r := bytes.NewReader([]byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
	})

	s, err := entropy.NewStream(r, 4, 4)
	require.NoError(t, err)

	a := entropy.NewAdapter(s)
	require.EqualValues(t, 1, a.Uint32())
	require.EqualValues(t, 2, a.Uint32())
	require.EqualValues(t, 3, a.Uint32())

	err = entropy.Guard(func() { a.Uint32() })
	require.ErrorIs(t, err, entropy.ErrSource)
}
