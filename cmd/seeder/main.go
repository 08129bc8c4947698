// Команда seeder генерирует транспортную сеть, сохраняет ее в PostgreSQL или SQLite
// и при INDEX_AFTER_GENERATE индексирует размещения в Elasticsearch.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/akozadaev/travel_network_generator/internal/config"
	"github.com/akozadaev/travel_network_generator/internal/network"
	"github.com/akozadaev/travel_network_generator/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
)

func main() {
	cfg := config.Load()

	citiesFile := flag.String("cities", cfg.CitiesFile, "YAML или XLSX файл со списком городов")
	seed := flag.Uint64("seed", cfg.GeneratorSeed, "seed генератора; 0 означает seed от текущего времени")
	index := flag.Bool("index", cfg.IndexAfterGenerate, "индексировать размещения в Elasticsearch")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cities, err := config.LoadCities(*citiesFile)
	if err != nil {
		log.Fatalf("Error loading cities: %v", err)
	}

	ctx := context.Background()

	records, err := storage.Open(cfg.StorageDriver, cfg.RecordSource())
	if err != nil {
		log.Fatalf("Error opening %s storage: %v", cfg.StorageDriver, err)
	}
	defer records.Close()

	if err := records.Migrate(ctx); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	opts := network.Options{Atomic: cfg.GeneratorAtomic}
	if *index {
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.ElasticsearchURL},
		})
		if err != nil {
			log.Fatalf("Error creating Elasticsearch client: %v", err)
		}

		esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)
		if err := esStorage.CreateIndex(ctx, storage.AccommodationMapping); err != nil {
			log.Fatalf("Error creating index: %v", err)
		}
		opts.Indexer = esStorage
	}

	log.Printf("Generating network for %d cities into %s...", len(cities), records.Dialect())

	summary, err := network.NewRunner(records, opts).Run(ctx, cities, *seed)
	if err != nil {
		log.Fatalf("Error generating network: %v", err)
	}

	log.Printf("Generation %s finished in %s", summary.RunID, summary.FinishedAt.Sub(summary.StartedAt))
	log.Println("Seeding completed successfully!")
}
