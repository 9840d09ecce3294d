package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Providers ProvidersConfig
	News      NewsConfig
	Seeder    SeederConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "geoinfo" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
}

// ProvidersConfig holds external provider endpoints and credentials
type ProvidersConfig struct {
	WeatherBaseURL string
	WeatherAPIKey  string
	NewsBaseURL    string
	NewsAPIKey     string
	CountryBaseURL string
	CountryAPIKey  string
	RatesBaseURL   string
	RequestTimeout time.Duration
}

// MatchStrategy controls how stored news is matched against a country code
type MatchStrategy string

const (
	MatchContains MatchStrategy = "contains"
	MatchExact    MatchStrategy = "exact"
)

// NewsConfig holds news lookup behavior
type NewsConfig struct {
	Match        MatchStrategy
	PersistFetch bool
	InsertBatch  int
}

// SeederConfig holds settings for country cache pre-warming
type SeederConfig struct {
	CountryCodes []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	match := MatchStrategy(getEnv("NEWS_MATCH_STRATEGY", string(MatchContains)))
	if match != MatchContains && match != MatchExact {
		match = MatchContains
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "geoinfo"),
			Password: getEnv("DB_PASSWORD", "geoinfo_password"),
			Name:     getEnv("DB_NAME", "geoinfo"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 50),
			RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 100),
		},
		Providers: ProvidersConfig{
			WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
			NewsBaseURL:    getEnv("NEWS_BASE_URL", "https://newsapi.org/v2"),
			NewsAPIKey:     getEnv("NEWS_API_KEY", ""),
			CountryBaseURL: getEnv("COUNTRY_BASE_URL", "https://api.countrylayer.com/v2"),
			CountryAPIKey:  getEnv("COUNTRY_API_KEY", ""),
			RatesBaseURL:   getEnv("RATES_BASE_URL", "https://api.exchangerate.host"),
			RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		News: NewsConfig{
			Match:        match,
			PersistFetch: getEnvAsBool("NEWS_PERSIST_FETCHED", true),
			InsertBatch:  getEnvAsInt("NEWS_INSERT_BATCH", 1000),
		},
		Seeder: SeederConfig{
			CountryCodes: getEnvAsSlice("SEEDER_COUNTRY_CODES"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
