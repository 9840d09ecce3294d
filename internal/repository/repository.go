package repository

import (
	"context"

	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// NewsRepository defines operations for cached news
type NewsRepository interface {
	ListByCountryCode(ctx context.Context, code string, match config.MatchStrategy) ([]model.NewsRow, error)
	BulkInsertNews(ctx context.Context, rows []model.NewsRow, batchSize int) error
}

// CountryRepository defines operations for cached country metadata
type CountryRepository interface {
	GetCountryByID(ctx context.Context, id int64) (*model.CountryRow, error)
	GetCountryCodes(ctx context.Context) (map[string]int64, error)
	UpsertCountries(ctx context.Context, countries []model.CountryRow) error
}

// Container holds all repositories
type Container struct {
	News    NewsRepository
	Country CountryRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			News:    &pgNewsRepository{db: db},
			Country: &pgCountryRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		News:    &sqliteNewsRepository{db: db},
		Country: &sqliteCountryRepository{db: db},
	}
}

// codeID is the scan target for country code lookups
type codeID struct {
	Alpha2Code string `db:"alpha2code"`
	ID         int64  `db:"id"`
}

// Helper to check if DB is empty (used by main)
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM countries"
	err := db.GetContext(ctx, &count, query)
	if err != nil {
		// Simplify error handling for non-existent tables
		return true, nil
	}
	return count == 0, nil
}

func chunked[T any](rows []T, size int, insert func(batch []T) error) error {
	if size <= 0 {
		size = 1000
	}
	for i := 0; i < len(rows); i += size {
		end := i + size
		if end > len(rows) {
			end = len(rows)
		}
		if err := insert(rows[i:end]); err != nil {
			return err
		}
	}
	return nil
}
