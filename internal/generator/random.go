package generator

import (
	"math"
	"math/rand/v2"
	"time"
)

// NewRand создает источник случайных чисел. Нулевой seed означает seed от текущего времени.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// pick выбирает равновероятно один элемент; повтор элемента в списке задает его вес
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// intBetween возвращает целое из [lo, hi] включительно
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// uniform возвращает вещественное из [lo, hi]
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
