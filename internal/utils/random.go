package utils

import "go-space-invaders/internal/interfaces"

// IntRange возвращает равномерно распределённое целое в [lo, hi] включительно.
func IntRange(rng interfaces.RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Choose выбирает равномерно случайный элемент. ok == false для пустого среза.
func Choose[T any](rng interfaces.RandomSource, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[rng.Intn(len(items))], true
}
