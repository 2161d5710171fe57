package shuffle

import (
	"crypto/rand"
	"io"
	mathrand "math/rand/v2"

	"github.com/sergeizaitcev/randomizer/pkg/entropy"
)

// DefaultBlockSize определяет размер блока энтропии в режиме фиксированного
// блока. 32 байт хватает на перемешивание не более 5 элементов.
const DefaultBlockSize = 32

var _ Randomizer = Crypto{}

// Crypto перемешивает с помощью криптографически стойкого источника.
type Crypto struct {
	// Источник энтропии. По умолчанию crypto/rand.Reader.
	Reader io.Reader

	// Размер фиксированного блока энтропии.
	//
	// Если 0, то блок подбирается под длину последовательности и при
	// необходимости дочитывается из Reader. Если больше 0, то читается ровно
	// BlockSize байт и перемешивание, которому их не хватило, завершается
	// ошибкой entropy.ErrExhausted.
	BlockSize int
}

// Shuffle реализует Randomizer.
//
// Возвращает ошибку entropy.ErrSource, если Reader не смог выдать энтропию,
// и entropy.ErrExhausted, если фиксированного блока не хватило.
func (c Crypto) Shuffle(n int, swap func(i, j int)) error {
	if n < 2 {
		return nil
	}

	size, refill := c.BlockSize, 0
	if size <= 0 {
		size, refill = entropy.ShuffleSize(n), entropy.RefillSize
	}

	stream, err := entropy.NewStream(c.reader(), size, refill)
	if err != nil {
		return err
	}

	r := mathrand.New(entropy.NewAdapter(stream))
	return entropy.Guard(func() { r.Shuffle(n, swap) })
}

func (c Crypto) reader() io.Reader {
	if c.Reader != nil {
		return c.Reader
	}
	return rand.Reader
}
