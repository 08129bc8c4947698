package storage

import (
	"context"
	"fmt"
	"strings"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS cities (
	id {{id}},
	name VARCHAR(255) NOT NULL UNIQUE,
	country VARCHAR(100) NOT NULL,
	country_code VARCHAR(2) NOT NULL,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	timezone VARCHAR(100) NOT NULL,
	popularity_score INTEGER NOT NULL DEFAULT 0 CHECK (popularity_score BETWEEN 0 AND 100),
	tourist_attractions_count INTEGER NOT NULL DEFAULT 0,
	average_stay_days INTEGER NOT NULL DEFAULT 2,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cities_country_name ON cities (country, name);
CREATE INDEX IF NOT EXISTS idx_cities_popularity ON cities (popularity_score DESC);

CREATE TABLE IF NOT EXISTS transport_operators (
	id {{id}},
	name VARCHAR(255) NOT NULL UNIQUE,
	operator_type VARCHAR(50) NOT NULL,
	website VARCHAR(255) NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transport_routes (
	id {{id}},
	operator_id BIGINT NOT NULL REFERENCES transport_operators (id) ON DELETE CASCADE,
	origin_id BIGINT NOT NULL REFERENCES cities (id) ON DELETE CASCADE,
	destination_id BIGINT NOT NULL REFERENCES cities (id) ON DELETE CASCADE,
	transport_type VARCHAR(20) NOT NULL,
	route_code VARCHAR(50) NOT NULL DEFAULT '',
	origin_station VARCHAR(255) NOT NULL,
	destination_station VARCHAR(255) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (operator_id, origin_id, destination_id, route_code),
	CHECK (origin_id <> destination_id)
);
CREATE INDEX IF NOT EXISTS idx_routes_origin_destination ON transport_routes (origin_id, destination_id, transport_type);
CREATE INDEX IF NOT EXISTS idx_routes_operator ON transport_routes (operator_id, is_active);

CREATE TABLE IF NOT EXISTS transport_schedules (
	id {{id}},
	route_id BIGINT NOT NULL REFERENCES transport_routes (id) ON DELETE CASCADE,
	departure_time TIME NOT NULL,
	arrival_time TIME NOT NULL,
	duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
	base_price NUMERIC(10, 2) NOT NULL CHECK (base_price > 0),
	currency VARCHAR(3) NOT NULL DEFAULT 'EUR',
	operates_monday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_tuesday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_wednesday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_thursday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_friday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_saturday BOOLEAN NOT NULL DEFAULT TRUE,
	operates_sunday BOOLEAN NOT NULL DEFAULT TRUE,
	valid_from DATE NOT NULL,
	valid_until DATE,
	total_capacity INTEGER NOT NULL DEFAULT 100,
	remaining_capacity INTEGER NOT NULL DEFAULT 100,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_schedules_route_departure ON transport_schedules (route_id, departure_time);
CREATE INDEX IF NOT EXISTS idx_schedules_validity ON transport_schedules (valid_from, valid_until);

CREATE TABLE IF NOT EXISTS accommodations (
	id {{id}},
	city_id BIGINT NOT NULL REFERENCES cities (id) ON DELETE CASCADE,
	name VARCHAR(255) NOT NULL,
	accommodation_type VARCHAR(50) NOT NULL,
	base_price NUMERIC(10, 2) NOT NULL,
	currency VARCHAR(3) NOT NULL DEFAULT 'EUR',
	star_rating NUMERIC(2, 1),
	review_score NUMERIC(3, 1),
	has_wifi BOOLEAN NOT NULL DEFAULT TRUE,
	has_breakfast BOOLEAN NOT NULL DEFAULT FALSE,
	has_parking BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_accommodations_city_price ON accommodations (city_id, is_active, base_price);
CREATE INDEX IF NOT EXISTS idx_accommodations_city_type ON accommodations (city_id, accommodation_type);

CREATE TABLE IF NOT EXISTS accommodation_availability (
	id {{id}},
	accommodation_id BIGINT NOT NULL REFERENCES accommodations (id) ON DELETE CASCADE,
	date DATE NOT NULL,
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	rooms_available INTEGER NOT NULL DEFAULT 10 CHECK (rooms_available >= 0),
	UNIQUE (accommodation_id, date)
);
CREATE INDEX IF NOT EXISTS idx_availability_date ON accommodation_availability (date, is_available);
`

// Migrate создает таблицы и индексы, если их еще нет.
func (rs *RecordStorage) Migrate(ctx context.Context) error {
	schema := strings.ReplaceAll(schemaTemplate, "{{id}}", rs.dialect.idColumn)

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := rs.q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema on %s: %w", rs.dialect.name, err)
		}
	}

	return nil
}
