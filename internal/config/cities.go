package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akozadaev/travel_network_generator/internal/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

// DefaultCities возвращает встроенный список европейских городов
func DefaultCities() []models.CityDescriptor {
	return []models.CityDescriptor{
		{Name: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris", AvgStayCost: 120, PopularityScore: 95},
		{Name: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London", AvgStayCost: 140, PopularityScore: 92},
		{Name: "Berlin", Country: "Germany", CountryCode: "DE", Latitude: 52.5200, Longitude: 13.4050, Timezone: "Europe/Berlin", AvgStayCost: 90, PopularityScore: 88},
		{Name: "Rome", Country: "Italy", CountryCode: "IT", Latitude: 41.9028, Longitude: 12.4964, Timezone: "Europe/Rome", AvgStayCost: 110, PopularityScore: 96},
		{Name: "Amsterdam", Country: "Netherlands", CountryCode: "NL", Latitude: 52.3676, Longitude: 4.9041, Timezone: "Europe/Amsterdam", AvgStayCost: 130, PopularityScore: 85},
		{Name: "Barcelona", Country: "Spain", CountryCode: "ES", Latitude: 41.3851, Longitude: 2.1734, Timezone: "Europe/Madrid", AvgStayCost: 100, PopularityScore: 90},
	}
}

// citiesFile описывает формат YAML файла со списком городов
type citiesFile struct {
	Cities []models.CityDescriptor `yaml:"cities"`
}

// LoadCities загружает описания городов из YAML (.yaml, .yml) или Excel (.xlsx).
// Пустой путь возвращает DefaultCities.
func LoadCities(path string) ([]models.CityDescriptor, error) {
	if path == "" {
		return DefaultCities(), nil
	}

	var cities []models.CityDescriptor
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cities, err = loadCitiesYAML(path)
	case ".xlsx":
		cities, err = loadCitiesXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported cities file format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("no cities found in %s", path)
	}
	if err := ValidateCities(cities); err != nil {
		return nil, fmt.Errorf("invalid cities in %s: %w", path, err)
	}
	return cities, nil
}

// ValidateCities проверяет, что у каждого города есть имя, имена не повторяются
// и координаты лежат в допустимых пределах.
func ValidateCities(cities []models.CityDescriptor) error {
	seen := make(map[string]bool, len(cities))
	for i, c := range cities {
		if c.Name == "" {
			return fmt.Errorf("city #%d has no name", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate city %q", c.Name)
		}
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			return fmt.Errorf("city %q has invalid coordinates", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func loadCitiesYAML(path string) ([]models.CityDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cities file: %w", err)
	}

	var file citiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse cities file: %w", err)
	}
	return file.Cities, nil
}

// Колонки листа Excel; порядок определяется строкой заголовков
var cityColumns = []string{"name", "country", "country_code", "latitude", "longitude", "timezone", "avg_stay_cost", "popularity_score"}

func loadCitiesXLSX(path string) ([]models.CityDescriptor, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cities workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(cityColumns))
	for _, col := range cityColumns {
		i := headerIndex(rows[0], col)
		if i < 0 {
			return nil, fmt.Errorf("column %q is missing in sheet %q", col, sheet)
		}
		idx[col] = i
	}

	cities := make([]models.CityDescriptor, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(col string) string {
			if i := idx[col]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		if cell("name") == "" {
			continue
		}

		lat, err := strconv.ParseFloat(cell("latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude: %w", n+2, err)
		}
		lon, err := strconv.ParseFloat(cell("longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude: %w", n+2, err)
		}
		cost, err := strconv.ParseFloat(cell("avg_stay_cost"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid avg_stay_cost: %w", n+2, err)
		}
		popularity, err := strconv.Atoi(cell("popularity_score"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid popularity_score: %w", n+2, err)
		}

		cities = append(cities, models.CityDescriptor{
			Name:            cell("name"),
			Country:         cell("country"),
			CountryCode:     strings.ToUpper(cell("country_code")),
			Latitude:        lat,
			Longitude:       lon,
			Timezone:        cell("timezone"),
			AvgStayCost:     cost,
			PopularityScore: popularity,
		})
	}

	return cities, nil
}

func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
