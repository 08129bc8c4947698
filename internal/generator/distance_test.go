package generator

import (
	"testing"

	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	paris  = models.GeoPoint{Lat: 48.8566, Lon: 2.3522}
	london = models.GeoPoint{Lat: 51.5074, Lon: -0.1278}
	berlin = models.GeoPoint{Lat: 52.5200, Lon: 13.4050}
)

func TestDistanceSamePointIsZero(t *testing.T) {
	for _, p := range []models.GeoPoint{paris, london, berlin, {Lat: -33.8688, Lon: 151.2093}} {
		assert.InDelta(t, 0, Distance(p, p), 1e-9)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]models.GeoPoint{{paris, london}, {london, berlin}, {berlin, paris}}
	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestDistanceKnownCities(t *testing.T) {
	assert.InDelta(t, 343, Distance(paris, london), 5)
	assert.InDelta(t, 878, Distance(paris, berlin), 10)
	assert.InDelta(t, 931, Distance(london, berlin), 10)
}

func TestDistanceAntipodes(t *testing.T) {
	d := Distance(models.GeoPoint{Lat: 0, Lon: 0}, models.GeoPoint{Lat: 0, Lon: 180})
	assert.InDelta(t, 3.14159265*EarthRadiusKm, d, 1)
}
