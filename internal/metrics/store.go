package metrics

import (
	"context"

	"github.com/akozadaev/travel_network_generator/internal/generator"
	"github.com/akozadaev/travel_network_generator/internal/models"
)

// Виды записей в метке kind
const (
	KindCity          = "city"
	KindOperator      = "operator"
	KindRoute         = "route"
	KindSchedule      = "schedule"
	KindAccommodation = "accommodation"
	KindAvailability  = "availability"
)

// InstrumentedStore считает успешные и неудачные вставки поверх другого хранилища
type InstrumentedStore struct {
	next    generator.Store
	metrics *Metrics
}

var _ generator.Store = (*InstrumentedStore)(nil)

// InstrumentStore оборачивает хранилище счетчиками записей
func (m *Metrics) InstrumentStore(store generator.Store) *InstrumentedStore {
	return &InstrumentedStore{next: store, metrics: m}
}

func (s *InstrumentedStore) observe(kind string, err error) error {
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues(kind).Inc()
		return err
	}
	s.metrics.RecordsCreated.WithLabelValues(kind).Inc()
	return nil
}

func (s *InstrumentedStore) CreateCity(ctx context.Context, city *models.City) error {
	return s.observe(KindCity, s.next.CreateCity(ctx, city))
}

func (s *InstrumentedStore) CreateOperator(ctx context.Context, operator *models.Operator) error {
	return s.observe(KindOperator, s.next.CreateOperator(ctx, operator))
}

func (s *InstrumentedStore) CreateRoute(ctx context.Context, route *models.Route) error {
	return s.observe(KindRoute, s.next.CreateRoute(ctx, route))
}

func (s *InstrumentedStore) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	return s.observe(KindSchedule, s.next.CreateSchedule(ctx, schedule))
}

func (s *InstrumentedStore) CreateAccommodation(ctx context.Context, accommodation *models.Accommodation) error {
	return s.observe(KindAccommodation, s.next.CreateAccommodation(ctx, accommodation))
}

func (s *InstrumentedStore) CreateAvailability(ctx context.Context, availability *models.Availability) error {
	return s.observe(KindAvailability, s.next.CreateAvailability(ctx, availability))
}
