package entropy

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

var (
	_ rand.Source = (*Adapter)(nil)
	_ io.Reader   = (*Adapter)(nil)
)

// Adapter представляет конечный источник энтропии как бесконечный поток
// случайных чисел, совместимый с rand.Source.
//
// Uint32, Uint64 и Fill не могут вернуть ошибку, поэтому при исчерпании
// источника они паникуют; паника перехватывается Guard и превращается в
// ошибку. Read возвращает ошибку напрямую.
type Adapter struct {
	src Taker
}

// NewAdapter возвращает новый экземпляр Adapter.
func NewAdapter(src Taker) *Adapter {
	return &Adapter{src: src}
}

// Uint32 возвращает следующие 4 байта как little-endian число.
func (a *Adapter) Uint32() uint32 {
	return binary.LittleEndian.Uint32(a.mustTake(4))
}

// Uint64 возвращает следующие 8 байт как little-endian число.
func (a *Adapter) Uint64() uint64 {
	return binary.LittleEndian.Uint64(a.mustTake(8))
}

// Fill копирует в p следующие len(p) байт.
func (a *Adapter) Fill(p []byte) {
	copy(p, a.mustTake(len(p)))
}

// Read копирует в p следующие len(p) байт. Если байт недостаточно, то p не
// изменяется и возвращается ошибка.
func (a *Adapter) Read(p []byte) (int, error) {
	b, err := a.src.Take(len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}

func (a *Adapter) mustTake(n int) []byte {
	b, err := a.src.Take(n)
	if err != nil {
		panic(&fault{err: err})
	}
	return b
}

// fault переносит ошибку источника через паникующие методы Adapter.
type fault struct {
	err error
}

// Guard выполняет fn и возвращает ошибку, если внутри fn Adapter исчерпал
// свой источник. Остальные паники пробрасываются дальше.
func Guard(fn func()) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		f, ok := e.(*fault)
		if !ok {
			panic(e)
		}
		err = f.err
	}()

	fn()
	return nil
}
