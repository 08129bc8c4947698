package generator

import (
	"math"
	"math/rand/v2"
)

const (
	baseRatePerKm   = 0.08
	priceNoiseRatio = 0.05
	// MinFare задает минимальную цену билета
	MinFare = 20.00
)

// Price рассчитывает цену билета: линейная ставка за километр плюс нормальный шум
// со стандартным отклонением 5% расстояния, не ниже MinFare, с точностью до цента.
func Price(rng *rand.Rand, distanceKm float64) float64 {
	base := distanceKm * baseRatePerKm
	noise := rng.NormFloat64() * distanceKm * priceNoiseRatio
	return round(math.Max(base+noise, MinFare), 2)
}
