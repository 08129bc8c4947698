// Package storage содержит реализации хранилищ для PostgreSQL/SQLite и Elasticsearch/OpenSearch.
package storage

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
)

// AccommodationMapping содержит маппинг индекса размещений
//
//go:embed mapping.json
var AccommodationMapping string

const defaultSearchLimit = 20

// ElasticsearchStorage предоставляет методы для работы с Elasticsearch/OpenSearch.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса размещений
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
}

// NewElasticsearchStorageWithURL создает новый экземпляр ElasticsearchStorage с указанным URL.
// Используется для поддержки OpenSearch через прямые HTTP запросы.
func NewElasticsearchStorageWithURL(client *elasticsearch.Client, index string, baseURL string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// CreateIndex создает индекс в Elasticsearch/OpenSearch с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		// Индекс уже существует
		return nil
	}

	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// AccommodationDocuments строит документы индекса из сгенерированных городов и размещений.
// Размещения с неизвестным городом пропускаются.
func AccommodationDocuments(cities []*models.City, accommodations []*models.Accommodation) []*models.AccommodationDocument {
	byID := make(map[int64]*models.City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}

	docs := make([]*models.AccommodationDocument, 0, len(accommodations))
	for _, a := range accommodations {
		city, ok := byID[a.CityID]
		if !ok {
			continue
		}
		docs = append(docs, &models.AccommodationDocument{
			ID:           strconv.FormatInt(a.ID, 10),
			Name:         a.Name,
			Type:         a.Type,
			City:         city.Name,
			Country:      city.Country,
			CountryCode:  city.CountryCode,
			Location:     city.Point(),
			BasePrice:    a.BasePrice,
			Currency:     a.Currency,
			StarRating:   a.StarRating,
			ReviewScore:  a.ReviewScore,
			HasWifi:      a.HasWifi,
			HasBreakfast: a.HasBreakfast,
			HasParking:   a.HasParking,
		})
	}
	return docs
}

// BulkIndexAccommodations индексирует несколько размещений за один запрос.
// Использует Bulk API через прямой HTTP запрос для совместимости с OpenSearch.
func (es *ElasticsearchStorage) BulkIndexAccommodations(ctx context.Context, docs []*models.AccommodationDocument) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, doc := range docs {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    doc.ID,
			},
		}

		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode accommodation: %w", err)
		}
	}

	url := fmt.Sprintf("%s/_bulk?refresh=true", es.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	// Bulk API отвечает 200 даже при ошибках отдельных документов
	var result struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  *struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		for _, item := range result.Items {
			for _, op := range item {
				if op.Error != nil {
					return fmt.Errorf("error bulk indexing: %s: %s", op.Error.Type, op.Error.Reason)
				}
			}
		}
		return fmt.Errorf("error bulk indexing: unknown item failure")
	}

	return nil
}

// SearchAccommodations ищет размещения по городу, типу, цене, оценке и расстоянию до точки.
// Результаты отсортированы по релевантности, затем по оценке гостей.
func (es *ElasticsearchStorage) SearchAccommodations(ctx context.Context, req *models.AccommodationSearchRequest) ([]*models.AccommodationDocument, error) {
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}
	query := buildAccommodationQuery(req)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search?size=%d", es.baseURL, es.index, req.Limit)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source models.AccommodationDocument `json:"_source"`
				Score  float64                      `json:"_score"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	docs := make([]*models.AccommodationDocument, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		doc := hit.Source
		doc.Score = hit.Score
		docs = append(docs, &doc)
	}

	return docs, nil
}

// buildAccommodationQuery строит запрос поиска размещений
func buildAccommodationQuery(req *models.AccommodationSearchRequest) map[string]interface{} {
	filters := []map[string]interface{}{}

	if req.City != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"city": req.City},
		})
	}

	if req.Type != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"accommodation_type": strings.ToUpper(req.Type)},
		})
	}

	if req.MaxPrice > 0 {
		filters = append(filters, map[string]interface{}{
			"range": map[string]interface{}{
				"base_price": map[string]interface{}{"lte": req.MaxPrice},
			},
		})
	}

	if req.MinReviewScore > 0 {
		filters = append(filters, map[string]interface{}{
			"range": map[string]interface{}{
				"review_score": map[string]interface{}{"gte": req.MinReviewScore},
			},
		})
	}

	if req.Near != nil && req.RadiusKm > 0 {
		filters = append(filters, map[string]interface{}{
			"geo_distance": map[string]interface{}{
				"distance": fmt.Sprintf("%gkm", req.RadiusKm),
				"location": map[string]interface{}{"lat": req.Near.Lat, "lon": req.Near.Lon},
			},
		})
	}

	// Бустинг для размещений с завтраком и высокой звездностью
	shouldClauses := []map[string]interface{}{
		{"term": map[string]interface{}{"has_breakfast": map[string]interface{}{"value": true, "boost": 1.5}}},
		{"range": map[string]interface{}{"star_rating": map[string]interface{}{"gte": 4.5, "boost": 2.0}}},
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter":               filters,
				"should":               shouldClauses,
				"minimum_should_match": 0,
			},
		},
		"sort": []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
			{"review_score": map[string]interface{}{"order": "desc"}},
			{"base_price": map[string]interface{}{"order": "asc"}},
		},
	}
}
