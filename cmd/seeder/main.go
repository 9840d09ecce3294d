package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/alexivanou/geoinfo-api/internal/clients/country"
	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/database"
	"github.com/alexivanou/geoinfo-api/internal/repository"
	"github.com/alexivanou/geoinfo-api/internal/service"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Pre-warms the country cache by fetching provider metadata for a list of
// alpha-2 codes (flag or SEEDER_COUNTRY_CODES).
func main() {
	var codesFlag = flag.String("codes", "", "Comma-separated alpha-2 codes to seed (overrides SEEDER_COUNTRY_CODES)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	codes := cfg.Seeder.CountryCodes
	if *codesFlag != "" {
		codes = nil
		for _, c := range strings.Split(*codesFlag, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				codes = append(codes, trimmed)
			}
		}
	}
	if len(codes) == 0 {
		logger.Fatal("No country codes to seed")
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	ctx := context.Background()
	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		m, err := migrate.New("file://migrations/sqlite", "sqlite3://"+cfg.DB.DSN())
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)
	countryClient := country.NewClient(cfg.Providers.CountryBaseURL, cfg.Providers.CountryAPIKey, cfg.Providers.RequestTimeout)
	countrySvc := service.NewCountryService(repos.Country, countryClient)

	seeded := 0
	for _, code := range codes {
		logger.Info("Fetching country", zap.String("code", code))
		if err := countrySvc.FetchCountries(ctx, code); err != nil {
			logger.Warn("Failed to fetch country", zap.String("code", code), zap.Error(err))
			continue
		}
		seeded++
	}

	known, err := countrySvc.GetCountryCodes(ctx)
	if err != nil {
		logger.Fatal("Failed to read back country codes", zap.Error(err))
	}

	logger.Info("Country cache seeded",
		zap.Int("requested", len(codes)),
		zap.Int("fetched", seeded),
		zap.Int("known_total", len(known)),
	)
}
