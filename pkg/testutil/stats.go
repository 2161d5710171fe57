package testutil

// ChiSquare возвращает статистику хи-квадрат Пирсона для наблюдаемых частот
// counts относительно равномерного распределения по k категориям.
// Категории, которых нет в counts, считаются ненаблюдавшимися.
func ChiSquare[K comparable](counts map[K]int, k int) float64 {
	if k <= 0 {
		return 0
	}

	var total int
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0
	}

	expected := float64(total) / float64(k)

	var chi float64
	for _, n := range counts {
		d := float64(n) - expected
		chi += d * d / expected
	}

	// Вклад ненаблюдавшихся категорий: (0 - e)^2 / e = e.
	if missing := k - len(counts); missing > 0 {
		chi += float64(missing) * expected
	}

	return chi
}
