package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/api"
	"github.com/alexivanou/geoinfo-api/internal/clients/country"
	"github.com/alexivanou/geoinfo-api/internal/clients/news"
	"github.com/alexivanou/geoinfo-api/internal/clients/rates"
	"github.com/alexivanou/geoinfo-api/internal/clients/weather"
	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/database"
	"github.com/alexivanou/geoinfo-api/internal/repository"
	"github.com/alexivanou/geoinfo-api/internal/service"
	"github.com/alexivanou/geoinfo-api/internal/stats"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)

	weatherClient := weather.NewClient(cfg.Providers.WeatherBaseURL, cfg.Providers.WeatherAPIKey, cfg.Providers.RequestTimeout)
	newsClient := news.NewClient(cfg.Providers.NewsBaseURL, cfg.Providers.NewsAPIKey, cfg.Providers.RequestTimeout)
	countryClient := country.NewClient(cfg.Providers.CountryBaseURL, cfg.Providers.CountryAPIKey, cfg.Providers.RequestTimeout)
	ratesClient := rates.NewClient(cfg.Providers.RatesBaseURL, cfg.Providers.RequestTimeout)

	countrySvc := service.NewCountryService(repos.Country, countryClient)
	newsSvc := service.NewNewsService(repos.News, repos.Country, countrySvc, newsClient, cfg.News)
	locationSvc := service.NewLocationService(countrySvc, weatherClient, ratesClient)

	ctx := context.Background()
	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Warn("Failed to check if database is empty", zap.Error(err))
	} else if isEmpty && len(cfg.Seeder.CountryCodes) > 0 {
		logger.Info("Country cache is empty, pre-warming...",
			zap.Strings("codes", cfg.Seeder.CountryCodes))
		for _, code := range cfg.Seeder.CountryCodes {
			if err := countrySvc.FetchCountries(ctx, code); err != nil {
				logger.Warn("Failed to fetch country", zap.String("code", code), zap.Error(err))
			}
		}
	}

	statsCollector := stats.NewCollector(db, cfg.DB)
	router := api.NewRouter(newsSvc, locationSvc, statsCollector, cfg.Server)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	var m *migrate.Migrate
	var err error

	sourcePath := "file://migrations/postgres"

	if cfg.DB.IsMemory() {
		sourcePath = "file://migrations/sqlite"
		// Use driver instance directly to avoid DSN parsing issues with in-memory SQLite
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance(
			sourcePath,
			"sqlite3",
			driver,
		)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		// For Postgres, standard connection string works fine
		m, err = migrate.New(sourcePath, cfg.DB.DSN())
		if err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
