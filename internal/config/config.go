// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Поддерживаемые драйверы хранилища записей
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	ElasticsearchURL   string // URL для подключения к Elasticsearch/OpenSearch
	ElasticsearchIndex string // Индекс размещений
	StorageDriver      string // postgres или sqlite
	SQLitePath         string // Путь к файлу SQLite
	PostgresHost       string // Хост PostgreSQL
	PostgresPort       string // Порт PostgreSQL
	PostgresUser       string // Пользователь PostgreSQL
	PostgresPassword   string // Пароль PostgreSQL
	PostgresDB         string // Имя базы данных PostgreSQL
	AppPort            string // Порт для HTTP сервера
	CitiesFile         string // YAML или XLSX со списком городов; если пусто, встроенный список
	GeneratorSeed      uint64 // Seed генератора; 0 означает seed от текущего времени
	GeneratorAtomic    bool   // Выполнять генерацию в одной транзакции
	IndexAfterGenerate bool   // Индексировать размещения в Elasticsearch после генерации
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
func Load() *Config {
	return &Config{
		ElasticsearchURL:   getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticsearchIndex: getEnv("ELASTICSEARCH_INDEX", "accommodations"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres)),
		SQLitePath:         getEnv("SQLITE_PATH", "travel.db"),
		PostgresHost:       getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:       getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:       getEnv("POSTGRES_USER", "travel_user"),
		PostgresPassword:   getEnv("POSTGRES_PASSWORD", "travel_pass"),
		PostgresDB:         getEnv("POSTGRES_DB", "travel_db"),
		AppPort:            getEnv("APP_PORT", "8080"),
		CitiesFile:         getEnv("CITIES_FILE", ""),
		GeneratorSeed:      getEnvUint("GENERATOR_SEED", 0),
		GeneratorAtomic:    getEnvBool("GENERATOR_ATOMIC", true),
		IndexAfterGenerate: getEnvBool("INDEX_AFTER_GENERATE", false),
	}
}

// PostgresDSN собирает строку подключения к PostgreSQL
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresDB,
	)
}

// RecordSource возвращает DSN для PostgreSQL либо путь к файлу для SQLite
func (c *Config) RecordSource() string {
	if c.StorageDriver == DriverSQLite {
		return c.SQLitePath
	}
	return c.PostgresDSN()
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	value, err := strconv.ParseUint(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
