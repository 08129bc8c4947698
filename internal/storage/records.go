package storage

import (
	"context"

	"github.com/akozadaev/travel_network_generator/internal/generator"
	"github.com/akozadaev/travel_network_generator/internal/models"
)

var _ generator.Store = (*RecordStorage)(nil)

// CreateCity вставляет город и заполняет его ID.
func (rs *RecordStorage) CreateCity(ctx context.Context, city *models.City) error {
	query := `INSERT INTO cities (name, country, country_code, latitude, longitude, timezone,
		popularity_score, tourist_attractions_count, average_stay_days, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		city.Name,
		city.Country,
		city.CountryCode,
		city.Latitude,
		city.Longitude,
		city.Timezone,
		city.PopularityScore,
		city.TouristAttractionsCount,
		city.AverageStayDays,
		city.IsActive,
	).Scan(&city.ID); err != nil {
		return insertError("city", err)
	}
	return nil
}

// CreateOperator вставляет оператора и заполняет его ID.
func (rs *RecordStorage) CreateOperator(ctx context.Context, operator *models.Operator) error {
	query := `INSERT INTO transport_operators (name, operator_type, website, is_active)
		VALUES (?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		operator.Name,
		string(operator.Type),
		operator.Website,
		operator.IsActive,
	).Scan(&operator.ID); err != nil {
		return insertError("operator", err)
	}
	return nil
}

// CreateRoute вставляет маршрут и заполняет его ID.
func (rs *RecordStorage) CreateRoute(ctx context.Context, route *models.Route) error {
	query := `INSERT INTO transport_routes (operator_id, origin_id, destination_id, transport_type,
		route_code, origin_station, destination_station, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		route.OperatorID,
		route.OriginID,
		route.DestinationID,
		string(route.TransportType),
		route.RouteCode,
		route.OriginStation,
		route.DestinationStation,
		route.IsActive,
	).Scan(&route.ID); err != nil {
		return insertError("route", err)
	}
	return nil
}

// CreateSchedule вставляет рейс и заполняет его ID.
func (rs *RecordStorage) CreateSchedule(ctx context.Context, s *models.Schedule) error {
	query := `INSERT INTO transport_schedules (route_id, departure_time, arrival_time, duration_minutes,
		base_price, currency, operates_monday, operates_tuesday, operates_wednesday, operates_thursday,
		operates_friday, operates_saturday, operates_sunday, valid_from, valid_until,
		total_capacity, remaining_capacity, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		s.RouteID,
		s.DepartureTime,
		s.ArrivalTime,
		s.DurationMinutes,
		s.BasePrice,
		s.Currency,
		s.OperatesMonday,
		s.OperatesTuesday,
		s.OperatesWednesday,
		s.OperatesThursday,
		s.OperatesFriday,
		s.OperatesSaturday,
		s.OperatesSunday,
		s.ValidFrom,
		s.ValidUntil,
		s.TotalCapacity,
		s.RemainingCapacity,
		s.IsActive,
	).Scan(&s.ID); err != nil {
		return insertError("schedule", err)
	}
	return nil
}

// CreateAccommodation вставляет размещение и заполняет его ID.
func (rs *RecordStorage) CreateAccommodation(ctx context.Context, a *models.Accommodation) error {
	query := `INSERT INTO accommodations (city_id, name, accommodation_type, base_price, currency,
		star_rating, review_score, has_wifi, has_breakfast, has_parking, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		a.CityID,
		a.Name,
		string(a.Type),
		a.BasePrice,
		a.Currency,
		a.StarRating,
		a.ReviewScore,
		a.HasWifi,
		a.HasBreakfast,
		a.HasParking,
		a.IsActive,
	).Scan(&a.ID); err != nil {
		return insertError("accommodation", err)
	}
	return nil
}

// CreateAvailability вставляет запись доступности и заполняет ее ID.
// Повтор пары (размещение, дата) нарушает уникальность и возвращает ошибку.
func (rs *RecordStorage) CreateAvailability(ctx context.Context, a *models.Availability) error {
	query := `INSERT INTO accommodation_availability (accommodation_id, date, is_available, rooms_available)
		VALUES (?, ?, ?, ?) RETURNING id`

	if err := rs.queryRow(ctx, query,
		a.AccommodationID,
		a.Date,
		a.IsAvailable,
		a.RoomsAvailable,
	).Scan(&a.ID); err != nil {
		return insertError("availability", err)
	}
	return nil
}
