package randutil

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand/v2"
	"sync"
)

var (
	sharedOnce sync.Once
	shared     *lockedSource
)

var _ mathrand.Source = (*lockedSource)(nil)

// lockedSource определяет потокобезопасный быстрый генератор.
type lockedSource struct {
	mu  sync.Mutex
	src *mathrand.ChaCha8
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// Source возвращает общий для процесса быстрый генератор. Генератор
// инициализируется при первом обращении и безопасен для одновременного
// использования. Воспроизводимость последовательности не гарантируется.
func Source() mathrand.Source {
	sharedOnce.Do(func() {
		shared = &lockedSource{src: mathrand.NewChaCha8(seed())}
	})
	return shared
}

// Handle возвращает новый экземпляр rand.Rand поверх общего генератора.
func Handle() *mathrand.Rand {
	return mathrand.New(Source())
}

// seed возвращает начальное значение из crypto/rand; если оно недоступно, то
// используется генератор среды выполнения.
func seed() (s [32]byte) {
	_, err := io.ReadFull(rand.Reader, s[:])
	if err == nil {
		return s
	}
	for i := 0; i < len(s); i += 8 {
		binary.LittleEndian.PutUint64(s[i:], mathrand.Uint64())
	}
	return s
}
