// Package handlers содержит HTTP обработчики административного REST API транспортной сети.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akozadaev/travel_network_generator/internal/config"
	"github.com/akozadaev/travel_network_generator/internal/generator"
	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/akozadaev/travel_network_generator/internal/network"
	"github.com/akozadaev/travel_network_generator/internal/storage"
	"github.com/gorilla/mux"
)

const (
	defaultAvailabilityDays = 30
	maxAvailabilityDays     = 365
	defaultSearchLimit      = 20
)

// Catalog читает сгенерированную сеть из хранилища записей
type Catalog interface {
	ListCities(ctx context.Context) ([]*models.City, error)
	GetCity(ctx context.Context, id int64) (*models.City, error)
	ListOperators(ctx context.Context) ([]*models.Operator, error)
	ListRoutes(ctx context.Context, filter storage.RouteFilter) ([]*models.RouteView, error)
	ListSchedules(ctx context.Context, routeID int64) ([]*models.Schedule, error)
	ListAccommodations(ctx context.Context, cityID int64) ([]*models.Accommodation, error)
	ListAvailability(ctx context.Context, accommodationID int64, from models.Date, days int) ([]*models.Availability, error)
	Counts(ctx context.Context) (*models.NetworkCounts, error)
}

// Searcher ищет размещения в Elasticsearch/OpenSearch
type Searcher interface {
	SearchAccommodations(ctx context.Context, req *models.AccommodationSearchRequest) ([]*models.AccommodationDocument, error)
}

// NetworkRunner запускает генерацию сети
type NetworkRunner interface {
	Run(ctx context.Context, cities []models.CityDescriptor, seed uint64) (*generator.Summary, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
// Справочники читаются из PostgreSQL/SQLite, поиск размещений идет в Elasticsearch.
type Handlers struct {
	catalog       Catalog
	searcher      Searcher
	runner        NetworkRunner
	defaultCities []models.CityDescriptor
}

// NewHandlers создает новый экземпляр Handlers.
// defaultCities используются, если запрос на генерацию не содержит городов.
func NewHandlers(catalog Catalog, searcher Searcher, runner NetworkRunner, defaultCities []models.CityDescriptor) *Handlers {
	return &Handlers{
		catalog:       catalog,
		searcher:      searcher,
		runner:        runner,
		defaultCities: defaultCities,
	}
}

// Register регистрирует маршруты API в роутере
func (h *Handlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/stats", h.GetStats).Methods("GET")
	router.HandleFunc("/cities", h.ListCities).Methods("GET")
	router.HandleFunc("/cities/{id}", h.GetCity).Methods("GET")
	router.HandleFunc("/cities/{id}/accommodations", h.ListCityAccommodations).Methods("GET")
	router.HandleFunc("/operators", h.ListOperators).Methods("GET")
	router.HandleFunc("/routes", h.ListRoutes).Methods("GET")
	router.HandleFunc("/routes/{id}/schedules", h.ListSchedules).Methods("GET")
	router.HandleFunc("/accommodations/search", h.SearchAccommodations).Methods("POST")
	router.HandleFunc("/accommodations/{id}/availability", h.ListAvailability).Methods("GET")
	router.HandleFunc("/network/generate", h.GenerateNetwork).Methods("POST")
}

// ListCities возвращает все города сети.
// Эндпоинт: GET /cities
//
// @Summary      Список городов
// @Description  Возвращает все сгенерированные города, отсортированные по популярности
// @Tags         cities
// @Produce      json
// @Success      200  {array}   models.City
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /cities [get]
func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.catalog.ListCities(r.Context())
	if err != nil {
		log.Printf("Error listing cities: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, cities)
}

// GetCity возвращает город по идентификатору.
// Эндпоинт: GET /cities/{id}
//
// @Summary      Детали города
// @Tags         cities
// @Produce      json
// @Param        id   path      int  true  "Идентификатор города"
// @Success      200  {object}  models.City
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      404  {object}  map[string]string  "Город не найден"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /cities/{id} [get]
func (h *Handlers) GetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	city, err := h.catalog.GetCity(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "City not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting city: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, city)
}

// ListCityAccommodations возвращает размещения города.
// Эндпоинт: GET /cities/{id}/accommodations
//
// @Summary      Размещения города
// @Tags         accommodations
// @Produce      json
// @Param        id   path      int  true  "Идентификатор города"
// @Success      200  {array}   models.Accommodation
// @Failure      404  {object}  map[string]string  "Город не найден"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /cities/{id}/accommodations [get]
func (h *Handlers) ListCityAccommodations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.catalog.GetCity(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "City not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting city: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	accommodations, err := h.catalog.ListAccommodations(r.Context(), id)
	if err != nil {
		log.Printf("Error listing accommodations: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, accommodations)
}

// ListOperators возвращает транспортных операторов.
// Эндпоинт: GET /operators
//
// @Summary      Список операторов
// @Tags         operators
// @Produce      json
// @Success      200  {array}   models.Operator
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /operators [get]
func (h *Handlers) ListOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.catalog.ListOperators(r.Context())
	if err != nil {
		log.Printf("Error listing operators: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, operators)
}

// ListRoutes возвращает маршруты с фильтрами по городам и виду транспорта.
// Эндпоинт: GET /routes
//
// @Summary      Список маршрутов
// @Description  Маршруты с названиями оператора и городов. Фильтры необязательны.
// @Tags         routes
// @Produce      json
// @Param        origin          query     int     false  "ID города отправления"
// @Param        destination     query     int     false  "ID города прибытия"
// @Param        transport_type  query     string  false  "FLIGHT, TRAIN, BUS или FERRY"
// @Param        limit           query     int     false  "Размер страницы (по умолчанию 100)"
// @Param        offset          query     int     false  "Смещение"
// @Success      200  {array}   models.RouteView
// @Failure      400  {object}  map[string]string  "Неверный запрос"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /routes [get]
func (h *Handlers) ListRoutes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter storage.RouteFilter
	var err error
	if filter.OriginID, err = queryInt64(q.Get("origin")); err != nil {
		http.Error(w, "Invalid origin", http.StatusBadRequest)
		return
	}
	if filter.DestinationID, err = queryInt64(q.Get("destination")); err != nil {
		http.Error(w, "Invalid destination", http.StatusBadRequest)
		return
	}
	limit, err := queryInt64(q.Get("limit"))
	if err != nil || limit < 0 {
		http.Error(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := queryInt64(q.Get("offset"))
	if err != nil || offset < 0 {
		http.Error(w, "Invalid offset", http.StatusBadRequest)
		return
	}
	filter.Limit = int(limit)
	filter.Offset = int(offset)
	filter.TransportType = strings.ToUpper(q.Get("transport_type"))

	routes, err := h.catalog.ListRoutes(r.Context(), filter)
	if err != nil {
		log.Printf("Error listing routes: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, routes)
}

// ListSchedules возвращает расписание маршрута.
// Эндпоинт: GET /routes/{id}/schedules
//
// @Summary      Расписание маршрута
// @Tags         routes
// @Produce      json
// @Param        id   path      int  true  "Идентификатор маршрута"
// @Success      200  {array}   models.Schedule
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /routes/{id}/schedules [get]
func (h *Handlers) ListSchedules(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	schedules, err := h.catalog.ListSchedules(r.Context(), id)
	if err != nil {
		log.Printf("Error listing schedules: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, schedules)
}

// ListAvailability возвращает календарь доступности размещения.
// Эндпоинт: GET /accommodations/{id}/availability
//
// @Summary      Доступность размещения
// @Tags         accommodations
// @Produce      json
// @Param        id    path      int     true   "Идентификатор размещения"
// @Param        from  query     string  false  "Первый день, YYYY-MM-DD (по умолчанию сегодня)"
// @Param        days  query     int     false  "Количество дней (по умолчанию 30, максимум 365)"
// @Success      200  {array}   models.Availability
// @Failure      400  {object}  map[string]string  "Неверный запрос"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /accommodations/{id}/availability [get]
func (h *Handlers) ListAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	from := models.DateOf(time.Now())
	if raw := q.Get("from"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			http.Error(w, "Invalid from date", http.StatusBadRequest)
			return
		}
		from = parsed
	}

	days := defaultAvailabilityDays
	if raw := q.Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxAvailabilityDays {
			http.Error(w, fmt.Sprintf("days must be between 1 and %d", maxAvailabilityDays), http.StatusBadRequest)
			return
		}
		days = n
	}

	availability, err := h.catalog.ListAvailability(r.Context(), id, from, days)
	if err != nil {
		log.Printf("Error listing availability: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, availability)
}

// SearchAccommodations обрабатывает POST запрос на поиск размещений в индексе.
// Эндпоинт: POST /accommodations/search
//
// @Summary      Поиск размещений
// @Description  Ищет размещения по городу, типу, цене, оценке гостей и расстоянию до точки. Размещения с завтраком и высокой звездностью поднимаются выше.
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Param        request  body      models.AccommodationSearchRequest  true  "Параметры поиска"
// @Success      200      {object}  models.AccommodationSearchResponse
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /accommodations/search [post]
func (h *Handlers) SearchAccommodations(w http.ResponseWriter, r *http.Request) {
	var req models.AccommodationSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.MaxPrice < 0 || req.MinReviewScore < 0 || req.RadiusKm < 0 {
		http.Error(w, "max_price, min_review_score and radius_km must not be negative", http.StatusBadRequest)
		return
	}
	if req.Near == nil && req.RadiusKm > 0 {
		http.Error(w, "radius_km requires near", http.StatusBadRequest)
		return
	}

	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	docs, err := h.searcher.SearchAccommodations(r.Context(), &req)
	if err != nil {
		log.Printf("Error searching accommodations: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Преобразуем указатели в значения для JSON
	values := make([]models.AccommodationDocument, len(docs))
	for i, doc := range docs {
		values[i] = *doc
	}

	respondJSON(w, http.StatusOK, models.AccommodationSearchResponse{
		Accommodations: values,
		Total:          len(values),
	})
}

// GenerateNetwork запускает генерацию сети.
// Если города не переданы, используется список по умолчанию.
// Эндпоинт: POST /network/generate
//
// @Summary      Сгенерировать сеть
// @Description  Создает города, операторов, маршруты с расписаниями, размещения и календарь доступности. Одновременно выполняется только одна генерация. Имена городов, операторов и размещений уникальны, поэтому повторная генерация в непустое хранилище отклоняется с 409.
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        request  body      models.GenerateRequest  false  "Города и seed"
// @Success      201      {object}  generator.Summary
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      409      {object}  map[string]string  "Генерация уже выполняется или сеть уже создана"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /network/generate [post]
func (h *Handlers) GenerateNetwork(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	cities := req.Cities
	if len(cities) == 0 {
		cities = h.defaultCities
	}
	if err := config.ValidateCities(cities); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Обрыв соединения клиента не должен откатывать начатую генерацию
	summary, err := h.runner.Run(context.WithoutCancel(r.Context()), cities, req.Seed)
	if err != nil {
		if errors.Is(err, network.ErrRunInProgress) {
			http.Error(w, "Generation already in progress", http.StatusConflict)
			return
		}
		if errors.Is(err, storage.ErrDuplicate) {
			log.Printf("Network already exists: %v", err)
			http.Error(w, "Network already exists", http.StatusConflict)
			return
		}
		log.Printf("Error generating network: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, summary)
}

// GetStats возвращает количество записей каждого вида.
// Эндпоинт: GET /stats
//
// @Summary      Статистика сети
// @Tags         network
// @Produce      json
// @Success      200  {object}  models.NetworkCounts
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /stats [get]
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.catalog.Counts(r.Context())
	if err != nil {
		log.Printf("Error counting records: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryInt64(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
