// Package network запускает генерацию транспортной сети поверх хранилища записей
// и при необходимости индексирует размещения в Elasticsearch.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akozadaev/travel_network_generator/internal/generator"
	"github.com/akozadaev/travel_network_generator/internal/metrics"
	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/akozadaev/travel_network_generator/internal/storage"
)

// ErrRunInProgress возвращается, если предыдущая генерация еще не завершилась
var ErrRunInProgress = errors.New("generation already in progress")

// Indexer принимает документы размещений для поискового индекса
type Indexer interface {
	BulkIndexAccommodations(ctx context.Context, docs []*models.AccommodationDocument) error
}

// Options задает необязательные зависимости Runner
type Options struct {
	Atomic  bool             // Генерация в одной транзакции
	Indexer Indexer          // nil: не индексировать
	Metrics *metrics.Metrics // nil: без метрик
	Logger  *log.Logger      // nil: log.Default()
}

// Runner выполняет генерацию. Одновременно допускается только один запуск.
type Runner struct {
	store *storage.RecordStorage
	opts  Options
	mu    sync.Mutex
	clock func() time.Time
}

// NewRunner создает Runner поверх хранилища записей
func NewRunner(store *storage.RecordStorage, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Runner{
		store: store,
		opts:  opts,
		clock: time.Now,
	}
}

// Run генерирует сеть для списка городов. Нулевой seed берется от текущего времени.
// При Atomic любая ошибка откатывает все записи запуска.
func (r *Runner) Run(ctx context.Context, cities []models.CityDescriptor, seed uint64) (*generator.Summary, error) {
	if !r.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer r.mu.Unlock()

	start := time.Now()
	var (
		summary *generator.Summary
		gen     *generator.Generator
	)

	generate := func(store *storage.RecordStorage) error {
		var target generator.Store = store
		if r.opts.Metrics != nil {
			target = r.opts.Metrics.InstrumentStore(store)
		}
		gen = generator.NewGenerator(cities, target, generator.NewRand(seed), r.clock())
		gen.SetLogger(r.opts.Logger)

		var err error
		summary, err = gen.Generate(ctx)
		return err
	}

	var err error
	if r.opts.Atomic {
		err = r.store.RunInTx(ctx, generate)
	} else {
		err = generate(r.store)
	}
	if r.opts.Metrics != nil {
		r.opts.Metrics.ObserveGeneration(time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}

	if r.opts.Indexer != nil {
		docs := storage.AccommodationDocuments(gen.Cities(), gen.Accommodations())
		if err := r.opts.Indexer.BulkIndexAccommodations(ctx, docs); err != nil {
			return summary, fmt.Errorf("failed to index accommodations: %w", err)
		}
		r.opts.Logger.Printf("Indexed %d accommodations", len(docs))
	}

	return summary, nil
}
