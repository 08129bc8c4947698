package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akozadaev/travel_network_generator/internal/generator"
	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/akozadaev/travel_network_generator/internal/network"
	"github.com/akozadaev/travel_network_generator/internal/storage"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	cities         []*models.City
	operators      []*models.Operator
	routes         []*models.RouteView
	schedules      map[int64][]*models.Schedule
	accommodations map[int64][]*models.Accommodation
	err            error

	lastFilter   storage.RouteFilter
	lastFrom     models.Date
	lastDays     int
	lastAccommID int64
}

func (f *fakeCatalog) ListCities(context.Context) ([]*models.City, error) {
	return f.cities, f.err
}

func (f *fakeCatalog) GetCity(_ context.Context, id int64) (*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeCatalog) ListOperators(context.Context) ([]*models.Operator, error) {
	return f.operators, f.err
}

func (f *fakeCatalog) ListRoutes(_ context.Context, filter storage.RouteFilter) ([]*models.RouteView, error) {
	f.lastFilter = filter
	return f.routes, f.err
}

func (f *fakeCatalog) ListSchedules(_ context.Context, routeID int64) ([]*models.Schedule, error) {
	return f.schedules[routeID], f.err
}

func (f *fakeCatalog) ListAccommodations(_ context.Context, cityID int64) ([]*models.Accommodation, error) {
	return f.accommodations[cityID], f.err
}

func (f *fakeCatalog) ListAvailability(_ context.Context, id int64, from models.Date, days int) ([]*models.Availability, error) {
	f.lastAccommID, f.lastFrom, f.lastDays = id, from, days
	out := make([]*models.Availability, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, &models.Availability{AccommodationID: id, Date: from.AddDays(i), IsAvailable: true, RoomsAvailable: 3})
	}
	return out, f.err
}

func (f *fakeCatalog) Counts(context.Context) (*models.NetworkCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.NetworkCounts{Cities: len(f.cities), Operators: len(f.operators), Routes: len(f.routes)}, nil
}

type fakeSearcher struct {
	lastReq *models.AccommodationSearchRequest
	docs    []*models.AccommodationDocument
	err     error
}

func (f *fakeSearcher) SearchAccommodations(_ context.Context, req *models.AccommodationSearchRequest) ([]*models.AccommodationDocument, error) {
	f.lastReq = req
	return f.docs, f.err
}

type fakeRunner struct {
	cities []models.CityDescriptor
	seed   uint64
	err    error
}

func (f *fakeRunner) Run(_ context.Context, cities []models.CityDescriptor, seed uint64) (*generator.Summary, error) {
	f.cities, f.seed = cities, seed
	if f.err != nil {
		return nil, f.err
	}
	return &generator.Summary{
		RunID:         "run-1",
		StartedAt:     time.Now(),
		FinishedAt:    time.Now(),
		NetworkCounts: models.NetworkCounts{Cities: len(cities)},
	}, nil
}

var defaultCities = []models.CityDescriptor{
	{Name: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522, AvgStayCost: 120},
	{Name: "Rome", Country: "Italy", CountryCode: "IT", Latitude: 41.9028, Longitude: 12.4964, AvgStayCost: 110},
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		cities: []*models.City{
			{ID: 1, Name: "Paris", Country: "France", CountryCode: "FR", IsActive: true},
			{ID: 2, Name: "Rome", Country: "Italy", CountryCode: "IT", IsActive: true},
		},
		operators: []*models.Operator{{ID: 1, Name: "EuroRail", Type: models.OperatorTrain, IsActive: true}},
		routes: []*models.RouteView{{
			Route:        models.Route{ID: 7, OriginID: 1, DestinationID: 2, TransportType: models.TransportFlight, RouteCode: "FR-IT"},
			OperatorName: "EuroRail", OriginName: "Paris", DestinationName: "Rome",
		}},
		schedules: map[int64][]*models.Schedule{
			7: {{ID: 70, RouteID: 7, DepartureTime: models.NewTimeOfDay(8, 15), ArrivalTime: models.NewTimeOfDay(10, 20), DurationMinutes: 125, BasePrice: 88.5, Currency: "EUR"}},
		},
		accommodations: map[int64][]*models.Accommodation{
			1: {{ID: 11, CityID: 1, Name: "Paris HOTEL 2", Type: models.AccommodationHotel, BasePrice: 240}},
		},
	}
}

func setup(catalog *fakeCatalog, searcher *fakeSearcher, runner *fakeRunner) *mux.Router {
	router := mux.NewRouter()
	NewHandlers(catalog, searcher, runner, defaultCities).Register(router)
	return router
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := do(setup(newCatalog(), &fakeSearcher{}, &fakeRunner{}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListCities(t *testing.T) {
	rec := do(setup(newCatalog(), &fakeSearcher{}, &fakeRunner{}), http.MethodGet, "/cities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var cities []models.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	assert.Len(t, cities, 2)
}

func TestGetCity(t *testing.T) {
	router := setup(newCatalog(), &fakeSearcher{}, &fakeRunner{})

	rec := do(router, http.MethodGet, "/cities/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var city models.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &city))
	assert.Equal(t, "Rome", city.Name)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/cities/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/cities/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/cities/0", "").Code)
}

func TestCatalogErrorsAreInternal(t *testing.T) {
	catalog := newCatalog()
	catalog.err = errors.New("connection refused")
	router := setup(catalog, &fakeSearcher{}, &fakeRunner{})

	for _, path := range []string{"/cities", "/cities/1", "/operators", "/routes", "/stats"} {
		rec := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "connection refused", path)
	}
}

func TestListCityAccommodations(t *testing.T) {
	router := setup(newCatalog(), &fakeSearcher{}, &fakeRunner{})

	rec := do(router, http.MethodGet, "/cities/1/accommodations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accommodations []models.Accommodation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accommodations))
	require.Len(t, accommodations, 1)
	assert.Equal(t, models.AccommodationHotel, accommodations[0].Type)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/cities/42/accommodations", "").Code)
}

func TestListRoutesParsesFilter(t *testing.T) {
	catalog := newCatalog()
	router := setup(catalog, &fakeSearcher{}, &fakeRunner{})

	rec := do(router, http.MethodGet, "/routes?origin=1&destination=2&transport_type=flight&limit=10&offset=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storage.RouteFilter{OriginID: 1, DestinationID: 2, TransportType: "FLIGHT", Limit: 10, Offset: 5}, catalog.lastFilter)

	var routes []models.RouteView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "Paris", routes[0].OriginName)
	assert.Equal(t, "FR-IT", routes[0].RouteCode)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/routes?origin=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/routes?limit=-1", "").Code)
}

func TestListSchedules(t *testing.T) {
	rec := do(setup(newCatalog(), &fakeSearcher{}, &fakeRunner{}), http.MethodGet, "/routes/7/schedules", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"departure_time":"08:15"`)
	assert.Contains(t, rec.Body.String(), `"arrival_time":"10:20"`)
}

func TestListAvailability(t *testing.T) {
	catalog := newCatalog()
	router := setup(catalog, &fakeSearcher{}, &fakeRunner{})

	rec := do(router, http.MethodGet, "/accommodations/11/availability?from=2026-10-19&days=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(11), catalog.lastAccommID)
	assert.Equal(t, "2026-10-19", catalog.lastFrom.String())
	assert.Equal(t, 3, catalog.lastDays)
	assert.Contains(t, rec.Body.String(), `"date":"2026-10-21"`)

	rec = do(router, http.MethodGet, "/accommodations/11/availability", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultAvailabilityDays, catalog.lastDays)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/accommodations/11/availability?from=19.10.2026", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/accommodations/11/availability?days=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/accommodations/11/availability?days=400", "").Code)
}

func TestSearchAccommodations(t *testing.T) {
	searcher := &fakeSearcher{docs: []*models.AccommodationDocument{
		{ID: "11", Name: "Paris HOTEL 2", City: "Paris", Type: models.AccommodationHotel, BasePrice: 240, Score: 1.5},
	}}
	router := setup(newCatalog(), searcher, &fakeRunner{})

	rec := do(router, http.MethodPost, "/accommodations/search", `{"city":"Paris","max_price":300}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultSearchLimit, searcher.lastReq.Limit)
	assert.Equal(t, "Paris", searcher.lastReq.City)

	var resp models.AccommodationSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "11", resp.Accommodations[0].ID)
}

func TestSearchAccommodationsValidation(t *testing.T) {
	searcher := &fakeSearcher{}
	router := setup(newCatalog(), searcher, &fakeRunner{})

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/accommodations/search", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/accommodations/search", `{"max_price":-1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/accommodations/search", `{"radius_km":5}`).Code)
	assert.Nil(t, searcher.lastReq)

	searcher.err = errors.New("index_not_found_exception")
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodPost, "/accommodations/search", `{}`).Code)
}

func TestGenerateNetworkUsesDefaults(t *testing.T) {
	runner := &fakeRunner{}
	router := setup(newCatalog(), &fakeSearcher{}, runner)

	rec := do(router, http.MethodPost, "/network/generate", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, defaultCities, runner.cities)
	assert.Equal(t, uint64(0), runner.seed)

	var summary generator.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, 2, summary.Cities)
}

func TestGenerateNetworkWithBody(t *testing.T) {
	runner := &fakeRunner{}
	router := setup(newCatalog(), &fakeSearcher{}, runner)

	body := `{"seed":99,"cities":[{"name":"Vienna","country":"Austria","country_code":"AT","latitude":48.2,"longitude":16.37,"avg_stay_cost":115}]}`
	rec := do(router, http.MethodPost, "/network/generate", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, runner.cities, 1)
	assert.Equal(t, "Vienna", runner.cities[0].Name)
	assert.Equal(t, uint64(99), runner.seed)
}

func TestGenerateNetworkRejectsInvalidCities(t *testing.T) {
	runner := &fakeRunner{}
	router := setup(newCatalog(), &fakeSearcher{}, runner)

	cases := []string{
		`{"cities":[{"name":""}]}`,
		`{"cities":[{"name":"A"},{"name":"A"}]}`,
		`{"cities":[{"name":"A","latitude":120}]}`,
		`not json`,
	}
	for _, body := range cases {
		assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/network/generate", body).Code, body)
	}
	assert.Nil(t, runner.cities)
}

func TestGenerateNetworkConflict(t *testing.T) {
	router := setup(newCatalog(), &fakeSearcher{}, &fakeRunner{err: network.ErrRunInProgress})
	assert.Equal(t, http.StatusConflict, do(router, http.MethodPost, "/network/generate", "").Code)

	router = setup(newCatalog(), &fakeSearcher{}, &fakeRunner{err: errors.New("disk full")})
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodPost, "/network/generate", "").Code)
}

func TestGenerateNetworkAlreadyExists(t *testing.T) {
	err := fmt.Errorf("generation abc failed in phase cities: failed to create city \"Paris\": %w", storage.ErrDuplicate)
	router := setup(newCatalog(), &fakeSearcher{}, &fakeRunner{err: err})

	rec := do(router, http.MethodPost, "/network/generate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Network already exists")
}

func TestGetStats(t *testing.T) {
	rec := do(setup(newCatalog(), &fakeSearcher{}, &fakeRunner{}), http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts models.NetworkCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, 2, counts.Cities)
	assert.Equal(t, 1, counts.Routes)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(setup(newCatalog(), &fakeSearcher{}, &fakeRunner{}), http.MethodDelete, "/cities", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
