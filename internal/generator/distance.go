// Package generator строит синтетическую транспортную сеть: города, операторов,
// маршруты с расписаниями, размещения и календарь доступности.
package generator

import (
	"math"

	"github.com/akozadaev/travel_network_generator/internal/models"
)

// EarthRadiusKm задает радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Distance вычисляет расстояние по большому кругу между двумя точками в километрах
// по формуле гаверсинусов.
func Distance(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon) - toRadians(a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
