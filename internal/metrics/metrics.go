// Package metrics публикует метрики генератора и HTTP API в формате Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel_network"

// Результаты операций в метках status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics объединяет все счетчики и гистограммы сервиса.
// Регистрируется в переданном Registerer, что позволяет тестам использовать отдельный реестр.
type Metrics struct {
	RecordsCreated     *prometheus.CounterVec   // Созданные записи по виду
	StoreErrors        *prometheus.CounterVec   // Ошибки вставки по виду
	GenerationRuns     *prometheus.CounterVec   // Запуски генерации по результату
	GenerationDuration prometheus.Histogram     // Длительность генерации
	HTTPRequests       *prometheus.CounterVec   // HTTP запросы по маршруту, методу и коду
	HTTPDuration       *prometheus.HistogramVec // Длительность HTTP запросов
}

// New создает и регистрирует метрики
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Number of records written by the generator.",
		}, []string{"kind"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Number of failed record inserts.",
		}, []string{"kind"}),
		GenerationRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_runs_total",
			Help:      "Number of generation runs by outcome.",
		}, []string{"status"}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of generation runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests.",
		}, []string{"route", "method", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// ObserveGeneration фиксирует завершение запуска генерации
func (m *Metrics) ObserveGeneration(duration time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.GenerationRuns.WithLabelValues(status).Inc()
	m.GenerationDuration.Observe(duration.Seconds())
}

// Middleware считает HTTP запросы. Маршрут берется из шаблона gorilla/mux,
// чтобы идентификаторы в пути не раздували кардинальность.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		m.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
