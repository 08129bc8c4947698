// @title           Travel Network Generator API
// @version         1.0
// @description     Административный REST API синтетической транспортной сети: города, операторы, маршруты с расписаниями, размещения и календарь доступности.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/travel_network_generator

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/akozadaev/travel_network_generator/docs" // swagger docs
	"github.com/akozadaev/travel_network_generator/internal/config"
	"github.com/akozadaev/travel_network_generator/internal/handlers"
	"github.com/akozadaev/travel_network_generator/internal/metrics"
	"github.com/akozadaev/travel_network_generator/internal/network"
	"github.com/akozadaev/travel_network_generator/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cities, err := config.LoadCities(cfg.CitiesFile)
	if err != nil {
		log.Fatalf("Error loading cities: %v", err)
	}

	// Инициализация Elasticsearch клиента
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		log.Fatalf("Error creating Elasticsearch client: %v", err)
	}
	log.Println("Elasticsearch/OpenSearch client initialized")

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)
	if err := esStorage.CreateIndex(context.Background(), storage.AccommodationMapping); err != nil {
		log.Printf("Warning: could not create index: %v", err)
	} else {
		log.Println("Elasticsearch index created/verified")
	}

	// Инициализация хранилища записей
	records, err := storage.Open(cfg.StorageDriver, cfg.RecordSource())
	if err != nil {
		log.Fatalf("Error opening %s storage: %v", cfg.StorageDriver, err)
	}
	defer records.Close()

	if err := records.Migrate(context.Background()); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
	log.Printf("Connected to %s, schema is up to date", records.Dialect())

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	opts := network.Options{Atomic: cfg.GeneratorAtomic, Metrics: m}
	if cfg.IndexAfterGenerate {
		opts.Indexer = esStorage
	}
	runner := network.NewRunner(records, opts)

	// Инициализация handlers
	h := handlers.NewHandlers(records, esStorage, runner, cities)

	// Настройка роутера
	router := mux.NewRouter()
	h.Register(router)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	router.Use(m.Middleware)

	// Настройка CORS
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	// WriteTimeout покрывает синхронную генерацию в POST /network/generate
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

