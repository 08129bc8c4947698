package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akozadaev/travel_network_generator/internal/models"
)

// RouteFilter ограничивает выборку маршрутов. Нулевые поля не фильтруют.
type RouteFilter struct {
	OriginID      int64
	DestinationID int64
	TransportType string
	Limit         int
	Offset        int
}

const defaultRouteLimit = 100

const cityColumns = `id, name, country, country_code, latitude, longitude, timezone,
	popularity_score, tourist_attractions_count, average_stay_days, is_active`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCity(row rowScanner) (*models.City, error) {
	var c models.City
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Country,
		&c.CountryCode,
		&c.Latitude,
		&c.Longitude,
		&c.Timezone,
		&c.PopularityScore,
		&c.TouristAttractionsCount,
		&c.AverageStayDays,
		&c.IsActive,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCities возвращает все города, отсортированные по популярности и имени.
func (rs *RecordStorage) ListCities(ctx context.Context) ([]*models.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY popularity_score DESC, name`

	rows, err := rs.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	cities := []*models.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cities, nil
}

// GetCity возвращает город по идентификатору или ErrNotFound.
func (rs *RecordStorage) GetCity(ctx context.Context, id int64) (*models.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE id = ?`

	c, err := scanCity(rs.queryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return c, nil
}

// ListOperators возвращает всех операторов, отсортированных по имени.
func (rs *RecordStorage) ListOperators(ctx context.Context) ([]*models.Operator, error) {
	query := `SELECT id, name, operator_type, website, is_active FROM transport_operators ORDER BY name`

	rows, err := rs.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	defer rows.Close()

	operators := []*models.Operator{}
	for rows.Next() {
		var op models.Operator
		if err := rows.Scan(&op.ID, &op.Name, &op.Type, &op.Website, &op.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan operator: %w", err)
		}
		operators = append(operators, &op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return operators, nil
}

// ListRoutes возвращает маршруты с названиями оператора и городов.
func (rs *RecordStorage) ListRoutes(ctx context.Context, filter RouteFilter) ([]*models.RouteView, error) {
	var where []string
	var args []any
	if filter.OriginID != 0 {
		where = append(where, "r.origin_id = ?")
		args = append(args, filter.OriginID)
	}
	if filter.DestinationID != 0 {
		where = append(where, "r.destination_id = ?")
		args = append(args, filter.DestinationID)
	}
	if filter.TransportType != "" {
		where = append(where, "r.transport_type = ?")
		args = append(args, filter.TransportType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRouteLimit
	}

	query := `SELECT r.id, r.operator_id, r.origin_id, r.destination_id, r.transport_type, r.route_code,
		r.origin_station, r.destination_station, r.is_active, o.name, oc.name, dc.name
		FROM transport_routes r
		JOIN transport_operators o ON o.id = r.operator_id
		JOIN cities oc ON oc.id = r.origin_id
		JOIN cities dc ON dc.id = r.destination_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.id LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := rs.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	routes := []*models.RouteView{}
	for rows.Next() {
		var r models.RouteView
		if err := rows.Scan(
			&r.ID,
			&r.OperatorID,
			&r.OriginID,
			&r.DestinationID,
			&r.TransportType,
			&r.RouteCode,
			&r.OriginStation,
			&r.DestinationStation,
			&r.IsActive,
			&r.OperatorName,
			&r.OriginName,
			&r.DestinationName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return routes, nil
}

// ListSchedules возвращает рейсы маршрута, отсортированные по времени отправления.
func (rs *RecordStorage) ListSchedules(ctx context.Context, routeID int64) ([]*models.Schedule, error) {
	query := `SELECT id, route_id, departure_time, arrival_time, duration_minutes, base_price, currency,
		operates_monday, operates_tuesday, operates_wednesday, operates_thursday, operates_friday,
		operates_saturday, operates_sunday, valid_from, valid_until, total_capacity, remaining_capacity, is_active
		FROM transport_schedules WHERE route_id = ? ORDER BY departure_time, id`

	rows, err := rs.query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.RouteID,
			&s.DepartureTime,
			&s.ArrivalTime,
			&s.DurationMinutes,
			&s.BasePrice,
			&s.Currency,
			&s.OperatesMonday,
			&s.OperatesTuesday,
			&s.OperatesWednesday,
			&s.OperatesThursday,
			&s.OperatesFriday,
			&s.OperatesSaturday,
			&s.OperatesSunday,
			&s.ValidFrom,
			&s.ValidUntil,
			&s.TotalCapacity,
			&s.RemainingCapacity,
			&s.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return schedules, nil
}

// ListAccommodations возвращает размещения города, отсортированные по цене.
func (rs *RecordStorage) ListAccommodations(ctx context.Context, cityID int64) ([]*models.Accommodation, error) {
	query := `SELECT id, city_id, name, accommodation_type, base_price, currency, star_rating, review_score,
		has_wifi, has_breakfast, has_parking, is_active
		FROM accommodations WHERE city_id = ? ORDER BY base_price, id`

	rows, err := rs.query(ctx, query, cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accommodations: %w", err)
	}
	defer rows.Close()

	accommodations := []*models.Accommodation{}
	for rows.Next() {
		var a models.Accommodation
		var stars, review sql.NullFloat64
		if err := rows.Scan(
			&a.ID,
			&a.CityID,
			&a.Name,
			&a.Type,
			&a.BasePrice,
			&a.Currency,
			&stars,
			&review,
			&a.HasWifi,
			&a.HasBreakfast,
			&a.HasParking,
			&a.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan accommodation: %w", err)
		}
		a.StarRating = stars.Float64
		a.ReviewScore = review.Float64
		accommodations = append(accommodations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return accommodations, nil
}

// ListAvailability возвращает доступность размещения на days дней начиная с from.
func (rs *RecordStorage) ListAvailability(ctx context.Context, accommodationID int64, from models.Date, days int) ([]*models.Availability, error) {
	query := `SELECT id, accommodation_id, date, is_available, rooms_available
		FROM accommodation_availability
		WHERE accommodation_id = ? AND date >= ? AND date < ?
		ORDER BY date`

	rows, err := rs.query(ctx, query, accommodationID, from, from.AddDays(days))
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	records := []*models.Availability{}
	for rows.Next() {
		var a models.Availability
		if err := rows.Scan(&a.ID, &a.AccommodationID, &a.Date, &a.IsAvailable, &a.RoomsAvailable); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Counts возвращает количество записей в каждой таблице сети.
func (rs *RecordStorage) Counts(ctx context.Context) (*models.NetworkCounts, error) {
	var counts models.NetworkCounts
	targets := []struct {
		table string
		dest  *int
	}{
		{"cities", &counts.Cities},
		{"transport_operators", &counts.Operators},
		{"transport_routes", &counts.Routes},
		{"transport_schedules", &counts.Schedules},
		{"accommodations", &counts.Accommodations},
		{"accommodation_availability", &counts.Availability},
	}

	for _, t := range targets {
		if err := rs.queryRow(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}

	return &counts, nil
}
