package entropy

import "errors"

var (
	// ErrExhausted возвращается, если из блока запрошено больше байт, чем в
	// нём осталось. Это логическая ошибка: блок был подобран неверно.
	ErrExhausted = errors.New("entropy block is exhausted")

	// ErrSource возвращается, если источник энтропии не смог выдать
	// запрошенное количество байт.
	ErrSource = errors.New("entropy source is unavailable")
)
