package entropy

import "fmt"

// Taker определяет последовательный источник байт энтропии.
type Taker interface {
	// Take возвращает следующие n байт и сдвигает курсор. Если байт
	// недостаточно, то возвращает ошибку и ничего не потребляет.
	Take(n int) ([]byte, error)
}

var _ Taker = (*Block)(nil)

// Block определяет конечный блок энтропии. Байты потребляются слева направо,
// каждый ровно один раз.
type Block struct {
	remaining []byte
}

// NewBlock возвращает новый экземпляр Block поверх b. Block становится
// владельцем b; вызывающий не должен изменять его после передачи.
func NewBlock(b []byte) *Block {
	return &Block{remaining: b}
}

// Len возвращает количество непотреблённых байт.
func (b *Block) Len() int {
	return len(b.remaining)
}

// Take реализует Taker.
func (b *Block) Take(n int) ([]byte, error) {
	if n < 0 {
		panic(fmt.Sprintf("entropy: negative take %d", n))
	}
	if n > len(b.remaining) {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrExhausted, n, len(b.remaining))
	}
	p := b.remaining[:n:n]
	b.remaining = b.remaining[n:]
	return p, nil
}
