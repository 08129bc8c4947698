package generator

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func seedCities() []models.CityDescriptor {
	return []models.CityDescriptor{
		{Name: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris", AvgStayCost: 120, PopularityScore: 95},
		{Name: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London", AvgStayCost: 140, PopularityScore: 92},
		{Name: "Berlin", Country: "Germany", CountryCode: "DE", Latitude: 52.5200, Longitude: 13.4050, Timezone: "Europe/Berlin", AvgStayCost: 90, PopularityScore: 88},
		{Name: "Rome", Country: "Italy", CountryCode: "IT", Latitude: 41.9028, Longitude: 12.4964, Timezone: "Europe/Rome", AvgStayCost: 110, PopularityScore: 96},
		{Name: "Amsterdam", Country: "Netherlands", CountryCode: "NL", Latitude: 52.3676, Longitude: 4.9041, Timezone: "Europe/Amsterdam", AvgStayCost: 130, PopularityScore: 85},
	}
}

func newTestGenerator(cities []models.CityDescriptor, store Store, seed uint64) *Generator {
	g := NewGenerator(cities, store, NewRand(seed), testToday)
	g.SetLogger(log.New(io.Discard, "", 0))
	return g
}

func TestGenerateEndToEndThreeCities(t *testing.T) {
	store := &recordingStore{}
	g := newTestGenerator(seedCities()[:3], store, 2024)

	summary, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.cities, 3)
	assert.Len(t, store.operators, len(OperatorCatalog))
	assert.Len(t, store.routes, 6)
	assert.Len(t, store.schedules, 18)
	assert.Len(t, store.accommodations, 12)
	assert.Len(t, store.availability, 2160)

	for _, s := range store.schedules {
		assert.GreaterOrEqual(t, s.BasePrice, MinFare)
	}

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, models.NetworkCounts{
		Cities: 3, Operators: 6, Routes: 6, Schedules: 18, Accommodations: 12, Availability: 2160,
	}, summary.NetworkCounts)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))
}

func TestGenerateCountsScaleWithCities(t *testing.T) {
	all := seedCities()
	for n := 1; n <= len(all); n++ {
		store := &recordingStore{}
		_, err := newTestGenerator(all[:n], store, uint64(n)).Generate(context.Background())
		require.NoError(t, err)

		assert.Len(t, store.cities, n)
		assert.Len(t, store.routes, n*(n-1))
		assert.Len(t, store.schedules, n*(n-1)*3)
		assert.Len(t, store.accommodations, n*4)
		assert.Len(t, store.availability, n*4*180)
	}
}

func TestGenerateRoutesCoverBothDirections(t *testing.T) {
	store := &recordingStore{}
	g := newTestGenerator(seedCities(), store, 5)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	operatorIDs := map[int64]bool{}
	for _, op := range store.operators {
		operatorIDs[op.ID] = true
	}
	byID := map[int64]*models.City{}
	for _, c := range store.cities {
		byID[c.ID] = c
	}

	type pair struct{ from, to int64 }
	seen := map[pair]int{}
	for _, r := range store.routes {
		assert.NotEqual(t, r.OriginID, r.DestinationID)
		assert.True(t, operatorIDs[r.OperatorID])
		seen[pair{r.OriginID, r.DestinationID}]++

		origin, destination := byID[r.OriginID], byID[r.DestinationID]
		assert.Equal(t, origin.CountryCode+"-"+destination.CountryCode, r.RouteCode)
		assert.Equal(t, origin.Name+" Central Station", r.OriginStation)
		assert.Equal(t, destination.Name+" Central Station", r.DestinationStation)

		if Distance(origin.Point(), destination.Point()) >= longHaulKm {
			assert.Equal(t, models.TransportFlight, r.TransportType)
		}
	}

	for _, a := range store.cities {
		for _, b := range store.cities {
			if a.ID == b.ID {
				continue
			}
			assert.Equal(t, 1, seen[pair{a.ID, b.ID}], "%s -> %s", a.Name, b.Name)
		}
	}
}

func TestGenerateCityAttributes(t *testing.T) {
	store := &recordingStore{}
	g := newTestGenerator(seedCities(), store, 17)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	for i, city := range g.Cities() {
		assert.Equal(t, seedCities()[i].Name, city.Name)
		assert.GreaterOrEqual(t, city.TouristAttractionsCount, 20)
		assert.LessOrEqual(t, city.TouristAttractionsCount, 80)
		assert.GreaterOrEqual(t, city.AverageStayDays, 2)
		assert.LessOrEqual(t, city.AverageStayDays, 5)
		assert.True(t, city.IsActive)

		byName, ok := g.City(city.Name)
		require.True(t, ok)
		assert.Same(t, city, byName)
	}
}

func TestGenerateAccommodations(t *testing.T) {
	store := &recordingStore{}
	cities := seedCities()
	g := newTestGenerator(cities, store, 31)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, g.Accommodations(), len(cities)*len(AccommodationTiers))
	for i, acc := range g.Accommodations() {
		cd := cities[i/len(AccommodationTiers)]
		tier := AccommodationTiers[i%len(AccommodationTiers)]

		city, _ := g.City(cd.Name)
		assert.Equal(t, city.ID, acc.CityID)
		assert.Equal(t, tier.Type, acc.Type)
		assert.InDelta(t, cd.AvgStayCost*tier.PriceMultiplier, acc.BasePrice, 0.005)
		assert.GreaterOrEqual(t, acc.StarRating, 3.5)
		assert.LessOrEqual(t, acc.StarRating, 4.8)
		assert.GreaterOrEqual(t, acc.ReviewScore, 7.5)
		assert.LessOrEqual(t, acc.ReviewScore, 9.8)
		assert.Contains(t, acc.Name, cd.Name+" "+string(tier.Type))
	}
}

func TestGenerateAvailabilityCalendar(t *testing.T) {
	store := &recordingStore{}
	g := newTestGenerator(seedCities()[:2], store, 64)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	today := models.DateOf(testToday)
	byAccommodation := map[int64][]*models.Availability{}
	available := 0
	for _, a := range store.availability {
		byAccommodation[a.AccommodationID] = append(byAccommodation[a.AccommodationID], a)
		assert.GreaterOrEqual(t, a.RoomsAvailable, 3)
		assert.LessOrEqual(t, a.RoomsAvailable, 15)
		if a.IsAvailable {
			available++
		}
	}

	require.Len(t, byAccommodation, 8)
	for _, days := range byAccommodation {
		require.Len(t, days, AvailabilityDays)
		for offset, day := range days {
			assert.Equal(t, today.AddDays(offset), day.Date)
		}
	}

	assert.InDelta(t, 0.9, float64(available)/float64(len(store.availability)), 0.03)
}

func TestGenerateAmenityFrequency(t *testing.T) {
	var total, wifi, breakfast, parking int
	for seed := uint64(1); seed <= 250; seed++ {
		store := &recordingStore{}
		_, err := newTestGenerator(seedCities(), store, seed).Generate(context.Background())
		require.NoError(t, err)

		for _, a := range store.accommodations {
			total++
			if a.HasWifi {
				wifi++
			}
			if a.HasBreakfast {
				breakfast++
			}
			if a.HasParking {
				parking++
			}
		}
	}

	require.Equal(t, 250*len(seedCities())*len(AccommodationTiers), total)
	assert.InDelta(t, 3.0/4.0, float64(wifi)/float64(total), 0.03)
	assert.InDelta(t, 2.0/3.0, float64(breakfast)/float64(total), 0.03)
	assert.InDelta(t, 1.0/3.0, float64(parking)/float64(total), 0.03)
}

func TestGenerateOperatorIndependentOfMode(t *testing.T) {
	modeOf := map[models.OperatorType]models.TransportType{
		models.OperatorAirline: models.TransportFlight,
		models.OperatorTrain:   models.TransportTrain,
		models.OperatorBus:     models.TransportBus,
	}

	var airlineOnGround, groundOnFlight int
	for seed := uint64(1); seed <= 50; seed++ {
		store := &recordingStore{}
		_, err := newTestGenerator(seedCities(), store, seed).Generate(context.Background())
		require.NoError(t, err)

		operatorType := map[int64]models.OperatorType{}
		for _, op := range store.operators {
			operatorType[op.ID] = op.Type
		}
		for _, r := range store.routes {
			opType, ok := operatorType[r.OperatorID]
			require.True(t, ok)
			if modeOf[opType] == r.TransportType {
				continue
			}
			if opType == models.OperatorAirline {
				airlineOnGround++
			} else if r.TransportType == models.TransportFlight {
				groundOnFlight++
			}
		}
	}

	assert.Positive(t, airlineOnGround, "airline operators never ran ground routes")
	assert.Positive(t, groundOnFlight, "ground operators never ran flights")
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	first, second := &recordingStore{}, &recordingStore{}
	_, err := newTestGenerator(seedCities(), first, 123).Generate(context.Background())
	require.NoError(t, err)
	_, err = newTestGenerator(seedCities(), second, 123).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.routes, second.routes)
	assert.Equal(t, first.schedules, second.schedules)
	assert.Equal(t, first.accommodations, second.accommodations)
	assert.Equal(t, first.availability, second.availability)
}

func TestGenerateStopsOnStoreError(t *testing.T) {
	store := &recordingStore{failOn: "route"}
	g := newTestGenerator(seedCities()[:3], store, 1)

	summary, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, errInjected)
	assert.Contains(t, err.Error(), "phase routes")

	assert.Len(t, store.cities, 3)
	assert.Len(t, store.operators, len(OperatorCatalog))
	assert.Empty(t, store.routes)
	assert.Empty(t, store.accommodations)
	assert.Empty(t, store.availability)
}

func TestGenerateFailsOnFirstCity(t *testing.T) {
	store := &recordingStore{failOn: "city"}
	_, err := newTestGenerator(seedCities(), store, 1).Generate(context.Background())

	assert.ErrorIs(t, err, errInjected)
	assert.Empty(t, store.operators)
}
