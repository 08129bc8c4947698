package models

import "time"

// GeoPoint представляет географические координаты в градусах
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OperatorType задает категорию транспортного оператора
type OperatorType string

const (
	OperatorAirline OperatorType = "AIRLINE"
	OperatorTrain   OperatorType = "TRAIN"
	OperatorBus     OperatorType = "BUS"
	OperatorFerry   OperatorType = "FERRY"
)

// TransportType задает вид транспорта на маршруте
type TransportType string

const (
	TransportFlight TransportType = "FLIGHT"
	TransportTrain  TransportType = "TRAIN"
	TransportBus    TransportType = "BUS"
	TransportFerry  TransportType = "FERRY"
)

// AccommodationType задает тип размещения
type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "HOTEL"
	AccommodationHostel    AccommodationType = "HOSTEL"
	AccommodationApartment AccommodationType = "APARTMENT"
)

// DefaultCurrency задает валюту всех цен в сгенерированной сети
const DefaultCurrency = "EUR"

// CityDescriptor описывает входные данные города для генератора
type CityDescriptor struct {
	Name            string  `json:"name" yaml:"name"`
	Country         string  `json:"country" yaml:"country"`
	CountryCode     string  `json:"country_code" yaml:"country_code"`
	Latitude        float64 `json:"latitude" yaml:"latitude"`
	Longitude       float64 `json:"longitude" yaml:"longitude"`
	Timezone        string  `json:"timezone" yaml:"timezone"`
	AvgStayCost     float64 `json:"avg_stay_cost" yaml:"avg_stay_cost"`
	PopularityScore int     `json:"popularity_score" yaml:"popularity_score"`
}

// City представляет город в таблице cities
type City struct {
	ID                      int64   `json:"id"`
	Name                    string  `json:"name"`
	Country                 string  `json:"country"`
	CountryCode             string  `json:"country_code"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	Timezone                string  `json:"timezone"`
	PopularityScore         int     `json:"popularity_score"`
	TouristAttractionsCount int     `json:"tourist_attractions_count"`
	AverageStayDays         int     `json:"average_stay_days"`
	IsActive                bool    `json:"is_active"`
}

// Point возвращает координаты города
func (c *City) Point() GeoPoint {
	return GeoPoint{Lat: c.Latitude, Lon: c.Longitude}
}

// Operator представляет транспортную компанию
type Operator struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     OperatorType `json:"operator_type"`
	Website  string       `json:"website,omitempty"`
	IsActive bool         `json:"is_active"`
}

// Route представляет направленный маршрут между двумя городами
type Route struct {
	ID                 int64         `json:"id"`
	OperatorID         int64         `json:"operator_id"`
	OriginID           int64         `json:"origin_id"`
	DestinationID      int64         `json:"destination_id"`
	TransportType      TransportType `json:"transport_type"`
	RouteCode          string        `json:"route_code"`
	OriginStation      string        `json:"origin_station"`
	DestinationStation string        `json:"destination_station"`
	IsActive           bool          `json:"is_active"`
}

// Schedule представляет регулярный рейс по маршруту с ценой и днями работы
type Schedule struct {
	ID                int64     `json:"id"`
	RouteID           int64     `json:"route_id"`
	DepartureTime     TimeOfDay `json:"departure_time"`
	ArrivalTime       TimeOfDay `json:"arrival_time"`
	DurationMinutes   int       `json:"duration_minutes"`
	BasePrice         float64   `json:"base_price"`
	Currency          string    `json:"currency"`
	OperatesMonday    bool      `json:"operates_monday"`
	OperatesTuesday   bool      `json:"operates_tuesday"`
	OperatesWednesday bool      `json:"operates_wednesday"`
	OperatesThursday  bool      `json:"operates_thursday"`
	OperatesFriday    bool      `json:"operates_friday"`
	OperatesSaturday  bool      `json:"operates_saturday"`
	OperatesSunday    bool      `json:"operates_sunday"`
	ValidFrom         Date      `json:"valid_from"`
	ValidUntil        Date      `json:"valid_until"`
	TotalCapacity     int       `json:"total_capacity"`
	RemainingCapacity int       `json:"remaining_capacity"`
	IsActive          bool      `json:"is_active"`
}

// OperatesOn сообщает, выполняется ли рейс в указанный день недели
func (s *Schedule) OperatesOn(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return s.OperatesMonday
	case time.Tuesday:
		return s.OperatesTuesday
	case time.Wednesday:
		return s.OperatesWednesday
	case time.Thursday:
		return s.OperatesThursday
	case time.Friday:
		return s.OperatesFriday
	case time.Saturday:
		return s.OperatesSaturday
	case time.Sunday:
		return s.OperatesSunday
	}
	return false
}

// Accommodation представляет место проживания в городе
type Accommodation struct {
	ID           int64             `json:"id"`
	CityID       int64             `json:"city_id"`
	Name         string            `json:"name"`
	Type         AccommodationType `json:"accommodation_type"`
	BasePrice    float64           `json:"base_price"`
	Currency     string            `json:"currency"`
	StarRating   float64           `json:"star_rating"`
	ReviewScore  float64           `json:"review_score"`
	HasWifi      bool              `json:"has_wifi"`
	HasBreakfast bool              `json:"has_breakfast"`
	HasParking   bool              `json:"has_parking"`
	IsActive     bool              `json:"is_active"`
}

// Availability описывает наличие мест в размещении на конкретную дату
type Availability struct {
	ID              int64 `json:"id"`
	AccommodationID int64 `json:"accommodation_id"`
	Date            Date  `json:"date"`
	IsAvailable     bool  `json:"is_available"`
	RoomsAvailable  int   `json:"rooms_available"`
}

// RouteView представляет маршрут с названиями оператора и городов для административных списков
type RouteView struct {
	Route
	OperatorName    string `json:"operator_name"`
	OriginName      string `json:"origin_name"`
	DestinationName string `json:"destination_name"`
}

// NetworkCounts содержит количество записей каждого вида
type NetworkCounts struct {
	Cities         int `json:"cities"`
	Operators      int `json:"operators"`
	Routes         int `json:"routes"`
	Schedules      int `json:"schedules"`
	Accommodations int `json:"accommodations"`
	Availability   int `json:"availability"`
}

// GenerateRequest представляет запрос на генерацию сети
type GenerateRequest struct {
	Cities []CityDescriptor `json:"cities,omitempty"`
	Seed   uint64           `json:"seed,omitempty"`
}

// AccommodationSearchRequest представляет параметры поиска размещений
type AccommodationSearchRequest struct {
	City           string    `json:"city,omitempty"`
	Type           string    `json:"type,omitempty"`
	MaxPrice       float64   `json:"max_price,omitempty"`
	MinReviewScore float64   `json:"min_review_score,omitempty"`
	Near           *GeoPoint `json:"near,omitempty"`
	RadiusKm       float64   `json:"radius_km,omitempty"`
	Limit          int       `json:"limit,omitempty"`
}

// AccommodationDocument представляет размещение в поисковом индексе Elasticsearch
type AccommodationDocument struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         AccommodationType `json:"accommodation_type"`
	City         string            `json:"city"`
	Country      string            `json:"country"`
	CountryCode  string            `json:"country_code"`
	Location     GeoPoint          `json:"location"`
	BasePrice    float64           `json:"base_price"`
	Currency     string            `json:"currency"`
	StarRating   float64           `json:"star_rating"`
	ReviewScore  float64           `json:"review_score"`
	HasWifi      bool              `json:"has_wifi"`
	HasBreakfast bool              `json:"has_breakfast"`
	HasParking   bool              `json:"has_parking"`
	Score        float64           `json:"score,omitempty"` // Для ранжирования
}

// AccommodationSearchResponse представляет ответ поиска размещений
type AccommodationSearchResponse struct {
	Accommodations []AccommodationDocument `json:"accommodations"`
	Total          int                     `json:"total"`
}
