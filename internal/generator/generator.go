package generator

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/google/uuid"
)

// Store принимает записи, созданные генератором.
// Каждый метод вставляет запись, заполняет ее ID и возвращает ошибку при нарушении ограничений.
type Store interface {
	CreateCity(ctx context.Context, city *models.City) error
	CreateOperator(ctx context.Context, operator *models.Operator) error
	CreateRoute(ctx context.Context, route *models.Route) error
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	CreateAccommodation(ctx context.Context, accommodation *models.Accommodation) error
	CreateAvailability(ctx context.Context, availability *models.Availability) error
}

// Summary содержит итог успешной генерации
type Summary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	models.NetworkCounts
}

// Generator строит транспортную сеть для заданного списка городов.
// Не предназначен для параллельных запусков.
type Generator struct {
	descriptors []models.CityDescriptor
	store       Store
	rng         *rand.Rand
	today       models.Date
	logger      *log.Logger

	cities         map[string]*models.City
	cityOrder      []*models.City
	operators      map[string]*models.Operator
	operatorOrder  []*models.Operator
	accommodations []*models.Accommodation
	counts         models.NetworkCounts
}

// NewGenerator создает генератор. today задает первый день расписаний и календаря доступности.
func NewGenerator(cities []models.CityDescriptor, store Store, rng *rand.Rand, today time.Time) *Generator {
	return &Generator{
		descriptors: cities,
		store:       store,
		rng:         rng,
		today:       models.DateOf(today),
		logger:      log.Default(),
	}
}

// SetLogger заменяет логгер, в который пишутся итоги фаз
func (g *Generator) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Generate последовательно создает города, операторов, маршруты с расписаниями,
// размещения и доступность. Первая ошибка хранилища прерывает генерацию.
func (g *Generator) Generate(ctx context.Context) (*Summary, error) {
	g.reset()
	summary := &Summary{RunID: uuid.NewString(), StartedAt: time.Now()}

	phases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"cities", g.createCities},
		{"operators", g.createOperators},
		{"routes", g.createRoutesAndSchedules},
		{"accommodations", g.createAccommodations},
		{"availability", g.createAvailability},
	}

	for _, phase := range phases {
		if err := phase.run(ctx); err != nil {
			return nil, fmt.Errorf("generation %s failed in phase %s: %w", summary.RunID, phase.name, err)
		}
	}

	summary.FinishedAt = time.Now()
	summary.NetworkCounts = g.counts
	g.logger.Printf("Generation %s completed: %d cities, %d operators, %d routes, %d schedules, %d accommodations, %d availability records",
		summary.RunID, g.counts.Cities, g.counts.Operators, g.counts.Routes, g.counts.Schedules,
		g.counts.Accommodations, g.counts.Availability)

	return summary, nil
}

// Cities возвращает созданные города в порядке входного списка
func (g *Generator) Cities() []*models.City {
	return g.cityOrder
}

// City возвращает созданный город по имени
func (g *Generator) City(name string) (*models.City, bool) {
	city, ok := g.cities[name]
	return city, ok
}

// Operators возвращает созданных операторов в порядке каталога
func (g *Generator) Operators() []*models.Operator {
	return g.operatorOrder
}

// Accommodations возвращает созданные размещения
func (g *Generator) Accommodations() []*models.Accommodation {
	return g.accommodations
}

func (g *Generator) reset() {
	g.cities = make(map[string]*models.City, len(g.descriptors))
	g.cityOrder = make([]*models.City, 0, len(g.descriptors))
	g.operators = make(map[string]*models.Operator, len(OperatorCatalog))
	g.operatorOrder = make([]*models.Operator, 0, len(OperatorCatalog))
	g.accommodations = nil
	g.counts = models.NetworkCounts{}
}

func (g *Generator) createCities(ctx context.Context) error {
	for _, cd := range g.descriptors {
		city := &models.City{
			Name:                    cd.Name,
			Country:                 cd.Country,
			CountryCode:             cd.CountryCode,
			Latitude:                cd.Latitude,
			Longitude:               cd.Longitude,
			Timezone:                cd.Timezone,
			PopularityScore:         cd.PopularityScore,
			TouristAttractionsCount: intBetween(g.rng, minAttractions, maxAttractions),
			AverageStayDays:         intBetween(g.rng, minStayDays, maxStayDays),
			IsActive:                true,
		}
		if err := g.store.CreateCity(ctx, city); err != nil {
			return fmt.Errorf("failed to create city %q: %w", cd.Name, err)
		}
		g.cities[cd.Name] = city
		g.cityOrder = append(g.cityOrder, city)
		g.counts.Cities++
	}

	g.logger.Printf("Created %d cities", g.counts.Cities)
	return nil
}

func (g *Generator) createOperators(ctx context.Context) error {
	for _, spec := range OperatorCatalog {
		operator := &models.Operator{
			Name:     spec.Name,
			Type:     spec.Type,
			Website:  spec.Website,
			IsActive: true,
		}
		if err := g.store.CreateOperator(ctx, operator); err != nil {
			return fmt.Errorf("failed to create operator %q: %w", spec.Name, err)
		}
		g.operators[spec.Name] = operator
		g.operatorOrder = append(g.operatorOrder, operator)
		g.counts.Operators++
	}

	g.logger.Printf("Created %d operators", g.counts.Operators)
	return nil
}

func (g *Generator) createRoutesAndSchedules(ctx context.Context) error {
	for i, origin := range g.cityOrder {
		for _, destination := range g.cityOrder[i+1:] {
			if err := g.createDirectionalRoute(ctx, origin, destination); err != nil {
				return err
			}
			if err := g.createDirectionalRoute(ctx, destination, origin); err != nil {
				return err
			}
		}
	}

	g.logger.Printf("Created %d routes with %d schedules", g.counts.Routes, g.counts.Schedules)
	return nil
}

// createDirectionalRoute создает маршрут origin -> destination. Оператор выбирается
// из всего каталога независимо от вида транспорта.
func (g *Generator) createDirectionalRoute(ctx context.Context, origin, destination *models.City) error {
	distanceKm := Distance(origin.Point(), destination.Point())
	operator := pick(g.rng, g.operatorOrder)

	route := &models.Route{
		OperatorID:         operator.ID,
		OriginID:           origin.ID,
		DestinationID:      destination.ID,
		TransportType:      ClassifyTransport(g.rng, distanceKm),
		RouteCode:          fmt.Sprintf("%s-%s", origin.CountryCode, destination.CountryCode),
		OriginStation:      origin.Name + " Central Station",
		DestinationStation: destination.Name + " Central Station",
		IsActive:           true,
	}
	if err := g.store.CreateRoute(ctx, route); err != nil {
		return fmt.Errorf("failed to create route %s -> %s: %w", origin.Name, destination.Name, err)
	}
	g.counts.Routes++

	for _, schedule := range BuildSchedules(g.rng, route, distanceKm, g.today) {
		if err := g.store.CreateSchedule(ctx, schedule); err != nil {
			return fmt.Errorf("failed to create schedule for route %s -> %s: %w", origin.Name, destination.Name, err)
		}
		g.counts.Schedules++
	}

	return nil
}

func (g *Generator) createAccommodations(ctx context.Context) error {
	for _, cd := range g.descriptors {
		city := g.cities[cd.Name]

		for _, tier := range AccommodationTiers {
			accommodation := &models.Accommodation{
				CityID:       city.ID,
				Name:         fmt.Sprintf("%s %s %d", city.Name, tier.Type, intBetween(g.rng, 1, 5)),
				Type:         tier.Type,
				BasePrice:    round(cd.AvgStayCost*tier.PriceMultiplier, 2),
				Currency:     models.DefaultCurrency,
				StarRating:   round(uniform(g.rng, minStarRating, maxStarRating), 1),
				ReviewScore:  round(uniform(g.rng, minReviewScore, maxReviewScore), 1),
				HasWifi:      pick(g.rng, wifiChance),
				HasBreakfast: pick(g.rng, breakfastChance),
				HasParking:   pick(g.rng, parkingChance),
				IsActive:     true,
			}
			if err := g.store.CreateAccommodation(ctx, accommodation); err != nil {
				return fmt.Errorf("failed to create accommodation in %q: %w", city.Name, err)
			}
			g.accommodations = append(g.accommodations, accommodation)
			g.counts.Accommodations++
		}
	}

	g.logger.Printf("Created %d accommodations", g.counts.Accommodations)
	return nil
}

// createAvailability заполняет календарь на AvailabilityDays дней вперед.
// Флаг доступности и число комнат выбираются независимо друг от друга.
func (g *Generator) createAvailability(ctx context.Context) error {
	for _, accommodation := range g.accommodations {
		for offset := 0; offset < AvailabilityDays; offset++ {
			availability := &models.Availability{
				AccommodationID: accommodation.ID,
				Date:            g.today.AddDays(offset),
				IsAvailable:     g.rng.Float64() > unavailableShare,
				RoomsAvailable:  intBetween(g.rng, minRooms, maxRooms),
			}
			if err := g.store.CreateAvailability(ctx, availability); err != nil {
				return fmt.Errorf("failed to create availability for %q on %s: %w", accommodation.Name, availability.Date, err)
			}
			g.counts.Availability++
		}
	}

	g.logger.Printf("Created %d availability records", g.counts.Availability)
	return nil
}
