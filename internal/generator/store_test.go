package generator

import (
	"context"
	"errors"

	"github.com/akozadaev/travel_network_generator/internal/models"
)

var errInjected = errors.New("injected failure")

// recordingStore хранит записи в памяти и может упасть на заданном виде записи
type recordingStore struct {
	nextID         int64
	failOn         string
	cities         []*models.City
	operators      []*models.Operator
	routes         []*models.Route
	schedules      []*models.Schedule
	accommodations []*models.Accommodation
	availability   []*models.Availability
}

func (s *recordingStore) id(kind string) (int64, error) {
	if s.failOn == kind {
		return 0, errInjected
	}
	s.nextID++
	return s.nextID, nil
}

func (s *recordingStore) CreateCity(_ context.Context, city *models.City) error {
	id, err := s.id("city")
	if err != nil {
		return err
	}
	city.ID = id
	s.cities = append(s.cities, city)
	return nil
}

func (s *recordingStore) CreateOperator(_ context.Context, operator *models.Operator) error {
	id, err := s.id("operator")
	if err != nil {
		return err
	}
	operator.ID = id
	s.operators = append(s.operators, operator)
	return nil
}

func (s *recordingStore) CreateRoute(_ context.Context, route *models.Route) error {
	id, err := s.id("route")
	if err != nil {
		return err
	}
	route.ID = id
	s.routes = append(s.routes, route)
	return nil
}

func (s *recordingStore) CreateSchedule(_ context.Context, schedule *models.Schedule) error {
	id, err := s.id("schedule")
	if err != nil {
		return err
	}
	schedule.ID = id
	s.schedules = append(s.schedules, schedule)
	return nil
}

func (s *recordingStore) CreateAccommodation(_ context.Context, accommodation *models.Accommodation) error {
	id, err := s.id("accommodation")
	if err != nil {
		return err
	}
	accommodation.ID = id
	s.accommodations = append(s.accommodations, accommodation)
	return nil
}

func (s *recordingStore) CreateAvailability(_ context.Context, availability *models.Availability) error {
	id, err := s.id("availability")
	if err != nil {
		return err
	}
	availability.ID = id
	s.availability = append(s.availability, availability)
	return nil
}
