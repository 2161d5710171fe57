package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/randomizer/pkg/entropy"
)

func TestBlock_Take(t *testing.T) {
	block := entropy.NewBlock([]byte{1, 2, 3, 4, 5})
	require.Equal(t, 5, block.Len())

	b, err := block.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, 3, block.Len())

	b, err = block.Take(0)
	require.NoError(t, err)
	require.Empty(t, b)
	require.Equal(t, 3, block.Len())

	b, err = block.Take(3)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4, 5}, b)
	require.Zero(t, block.Len())
}

func TestBlock_Exhausted(t *testing.T) {
	block := entropy.NewBlock([]byte{1, 2, 3})

	for i := 0; i < 3; i++ {
		b, err := block.Take(4)
		require.ErrorIs(t, err, entropy.ErrExhausted)
		require.Nil(t, b)
		require.Equal(t, 3, block.Len(), "a failed take must not consume bytes")
	}

	_, err := block.Take(3)
	require.NoError(t, err)

	_, err = block.Take(1)
	require.ErrorIs(t, err, entropy.ErrExhausted)
}

func TestBlock_TakeDoesNotAlias(t *testing.T) {
	block := entropy.NewBlock([]byte{1, 2, 3, 4})

	b, err := block.Take(2)
	require.NoError(t, err)

	// Запись за пределы выданного среза не должна затрагивать остаток блока.
	b = append(b, 0xff)
	require.Equal(t, []byte{1, 2, 0xff}, b)

	rest, err := block.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4}, rest)
}

func TestBlock_NegativeTake(t *testing.T) {
	block := entropy.NewBlock([]byte{1})
	require.Panics(t, func() { block.Take(-1) })
}
