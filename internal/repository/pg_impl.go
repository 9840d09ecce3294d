package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgNewsRepository struct {
	db *sqlx.DB
}

func (r *pgNewsRepository) ListByCountryCode(ctx context.Context, code string, match config.MatchStrategy) ([]model.NewsRow, error) {
	q := `
		SELECT n.id, n.country_id, n.source, n.author, n.title, n.description, n.url, n.published_at
		FROM news n
		JOIN countries c ON n.country_id = c.id
		WHERE c.alpha2code LIKE '%' || $1 || '%'
		ORDER BY n.published_at DESC
	`
	if match == config.MatchExact {
		q = `
		SELECT n.id, n.country_id, n.source, n.author, n.title, n.description, n.url, n.published_at
		FROM news n
		JOIN countries c ON n.country_id = c.id
		WHERE c.alpha2code = $1
		ORDER BY n.published_at DESC
	`
	}
	var rows []model.NewsRow
	if err := r.db.SelectContext(ctx, &rows, q, code); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pgNewsRepository) BulkInsertNews(ctx context.Context, rows []model.NewsRow, batchSize int) error {
	return chunked(rows, batchSize, func(batch []model.NewsRow) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO news (country_id, source, author, title, description, url, published_at)
		VALUES (:country_id, :source, :author, :title, :description, :url, :published_at)`,
			batch)
		return err
	})
}

type pgCountryRepository struct {
	db *sqlx.DB
}

func (r *pgCountryRepository) GetCountryByID(ctx context.Context, id int64) (*model.CountryRow, error) {
	var country model.CountryRow
	if err := r.db.GetContext(ctx, &country, "SELECT * FROM countries WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *pgCountryRepository) GetCountryCodes(ctx context.Context) (map[string]int64, error) {
	var pairs []codeID
	if err := r.db.SelectContext(ctx, &pairs, "SELECT alpha2code, id FROM countries"); err != nil {
		return nil, err
	}
	codes := make(map[string]int64, len(pairs))
	for _, p := range pairs {
		codes[p.Alpha2Code] = p.ID
	}
	return codes, nil
}

func (r *pgCountryRepository) UpsertCountries(ctx context.Context, countries []model.CountryRow) error {
	return chunked(countries, 500, func(batch []model.CountryRow) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO countries (name, alpha2code, alpha3code, capital, region, subregion,
			population, latitude, longitude, demonym, area, numeric_code, flag)
		VALUES (:name, :alpha2code, :alpha3code, :capital, :region, :subregion,
			:population, :latitude, :longitude, :demonym, :area, :numeric_code, :flag)
		ON CONFLICT (alpha2code) DO UPDATE SET
			name = EXCLUDED.name,
			alpha3code = EXCLUDED.alpha3code,
			capital = EXCLUDED.capital,
			region = EXCLUDED.region,
			subregion = EXCLUDED.subregion,
			population = EXCLUDED.population,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			demonym = EXCLUDED.demonym,
			area = EXCLUDED.area,
			numeric_code = EXCLUDED.numeric_code,
			flag = EXCLUDED.flag`,
			batch)
		return err
	})
}
