package generator

import "github.com/akozadaev/travel_network_generator/internal/models"

// OperatorSpec описывает оператора из фиксированного каталога
type OperatorSpec struct {
	Name    string
	Type    models.OperatorType
	Website string
}

// OperatorCatalog перечисляет операторов, создаваемых при каждой генерации
var OperatorCatalog = []OperatorSpec{
	{Name: "Lufthansa", Type: models.OperatorAirline, Website: "https://www.lufthansa.com"},
	{Name: "Ryanair", Type: models.OperatorAirline, Website: "https://www.ryanair.com"},
	{Name: "British Airways", Type: models.OperatorAirline, Website: "https://www.britishairways.com"},
	{Name: "SNCF", Type: models.OperatorTrain, Website: "https://www.sncf.com"},
	{Name: "Eurostar", Type: models.OperatorTrain, Website: "https://www.eurostar.com"},
	{Name: "FlixBus", Type: models.OperatorBus, Website: "https://www.flixbus.com"},
}

// AccommodationTier задает тип размещения и множитель к средней стоимости проживания в городе
type AccommodationTier struct {
	Type            models.AccommodationType
	PriceMultiplier float64
}

// AccommodationTiers перечисляет размещения, создаваемые в каждом городе
var AccommodationTiers = []AccommodationTier{
	{Type: models.AccommodationHotel, PriceMultiplier: 2.0},
	{Type: models.AccommodationHotel, PriceMultiplier: 1.5},
	{Type: models.AccommodationHostel, PriceMultiplier: 0.3},
	{Type: models.AccommodationApartment, PriceMultiplier: 0.8},
}

// Диапазоны случайных атрибутов
const (
	minAttractions = 20
	maxAttractions = 80
	minStayDays    = 2
	maxStayDays    = 5

	minStarRating  = 3.5
	maxStarRating  = 4.8
	minReviewScore = 7.5
	maxReviewScore = 9.8

	// AvailabilityDays задает глубину календаря доступности
	AvailabilityDays = 180
	// доля дней без свободных мест
	unavailableShare = 0.1
	minRooms         = 3
	maxRooms         = 15
)

var (
	wifiChance      = []bool{true, true, true, false}
	breakfastChance = []bool{true, true, false}
	parkingChance   = []bool{true, false, false}
)
