package shuffle

import "github.com/sergeizaitcev/randomizer/pkg/randutil"

var _ Randomizer = Fast{}

// Fast перемешивает с помощью общего для процесса быстрого генератора.
// Не подходит, если порядок должен быть непредсказуем для злоумышленника.
type Fast struct{}

// Shuffle реализует Randomizer; ошибка всегда nil.
func (Fast) Shuffle(n int, swap func(i, j int)) error {
	randutil.Handle().Shuffle(n, swap)
	return nil
}
