// Package shuffle перемешивает последовательности с помощью быстрого или
// криптографически стойкого источника случайности.
package shuffle

// Randomizer определяет источник случайных перестановок.
type Randomizer interface {
	// Shuffle равновероятно переставляет n элементов через swap.
	Shuffle(n int, swap func(i, j int)) error
}

// InPlace равновероятно перемешивает s на месте.
func InPlace[T any, R Randomizer](r R, s []T) error {
	return r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// NewArray возвращает перемешанную копию s; сам s не изменяется.
func NewArray[T any, R Randomizer](r R, s []T) ([]T, error) {
	dst := make([]T, len(s))
	copy(dst, s)
	if err := InPlace(r, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
