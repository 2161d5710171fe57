package entropy

import (
	"fmt"
	"io"
)

const (
	// DrawSize определяет количество байт, которое rand.Rand.Shuffle
	// потребляет за одну перестановку без повторной выборки.
	DrawSize = 8

	// RefillSize определяет размер дополнительного блока, который Stream
	// запрашивает у источника, когда текущий блок исчерпан.
	RefillSize = 32
)

// ShuffleSize возвращает количество байт, достаточное для перемешивания n
// элементов через rand.Rand.Shuffle, если ни одна выборка не отклонена.
func ShuffleSize(n int) int {
	if n < 2 {
		return 0
	}
	return (n - 1) * DrawSize
}

var _ Taker = (*Stream)(nil)

// Stream определяет поток энтропии поверх io.Reader. Stream читает из
// источника блоками и никогда не выдаёт один и тот же байт дважды.
type Stream struct {
	r      io.Reader
	block  *Block
	refill int
	drawn  int
}

// NewStream читает из r первый блок размером size и возвращает новый
// экземпляр Stream. Если refill > 0, то при исчерпании блока Stream дочитывает
// из r блоки размером не меньше refill; иначе возвращает ErrExhausted.
func NewStream(r io.Reader, size, refill int) (*Stream, error) {
	s := &Stream{
		r:      r,
		block:  NewBlock(nil),
		refill: refill,
	}

	b, err := s.read(size)
	if err != nil {
		return nil, err
	}
	s.block = NewBlock(b)

	return s, nil
}

// Drawn возвращает общее количество байт, прочитанных из источника.
func (s *Stream) Drawn() int {
	return s.drawn
}

// Len возвращает количество непотреблённых байт в текущем блоке.
func (s *Stream) Len() int {
	return s.block.Len()
}

// Take реализует Taker.
func (s *Stream) Take(n int) ([]byte, error) {
	if n <= s.block.Len() || s.refill <= 0 {
		return s.block.Take(n)
	}

	rest := s.block.Len()
	b, err := s.read(max(s.refill, n-rest))
	if err != nil {
		return nil, err
	}

	// Остаток текущего блока ещё не выдавался, поэтому он переносится в
	// начало нового блока.
	tail, _ := s.block.Take(rest)
	s.block = NewBlock(append(tail, b...))

	return s.block.Take(n)
}

func (s *Stream) read(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	b := make([]byte, n)
	m, err := io.ReadFull(s.r, b)
	s.drawn += m
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %w", ErrSource, m, n, err)
	}

	return b, nil
}
