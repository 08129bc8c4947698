package generator

import (
	"math/rand/v2"

	"github.com/akozadaev/travel_network_generator/internal/models"
)

// Границы дистанционных диапазонов, км
const (
	shortHaulKm = 300.0
	longHaulKm  = 1000.0
)

var (
	shortHaulModes = []models.TransportType{models.TransportTrain, models.TransportBus, models.TransportTrain}
	midHaulModes   = []models.TransportType{models.TransportFlight, models.TransportTrain, models.TransportFlight}
)

// ClassifyTransport выбирает вид транспорта по расстоянию:
// до 300 км поезд или автобус (2:1), до 1000 км самолет или поезд (2:1), дальше только самолет.
func ClassifyTransport(rng *rand.Rand, distanceKm float64) models.TransportType {
	switch {
	case distanceKm < shortHaulKm:
		return pick(rng, shortHaulModes)
	case distanceKm < longHaulKm:
		return pick(rng, midHaulModes)
	default:
		return models.TransportFlight
	}
}

// EstimateDuration оценивает время в пути в минутах по эффективной скорости диапазона
// (100, 150 и 900 км/ч) со случайным отклонением. Результат не меньше одной минуты.
func EstimateDuration(rng *rand.Rand, distanceKm float64) int {
	var speedKmh float64
	var jitter int
	switch {
	case distanceKm < shortHaulKm:
		speedKmh, jitter = 100, 30
	case distanceKm < longHaulKm:
		speedKmh, jitter = 150, 60
	default:
		speedKmh, jitter = 900, 45
	}

	minutes := int(distanceKm/speedKmh*60) + intBetween(rng, -jitter, jitter)
	if minutes < 1 {
		return 1
	}
	return minutes
}
