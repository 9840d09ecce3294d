package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation ---

type sqliteNewsRepository struct {
	db *sqlx.DB
}

func (r *sqliteNewsRepository) ListByCountryCode(ctx context.Context, code string, match config.MatchStrategy) ([]model.NewsRow, error) {
	q := `
		SELECT n.id, n.country_id, n.source, n.author, n.title, n.description, n.url, n.published_at
		FROM news n
		JOIN countries c ON n.country_id = c.id
		WHERE c.alpha2code LIKE '%' || ? || '%'
		ORDER BY n.published_at DESC
	`
	if match == config.MatchExact {
		q = `
		SELECT n.id, n.country_id, n.source, n.author, n.title, n.description, n.url, n.published_at
		FROM news n
		JOIN countries c ON n.country_id = c.id
		WHERE c.alpha2code = ?
		ORDER BY n.published_at DESC
	`
	}
	var rows []model.NewsRow
	if err := r.db.SelectContext(ctx, &rows, q, code); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *sqliteNewsRepository) BulkInsertNews(ctx context.Context, rows []model.NewsRow, batchSize int) error {
	// SQLite variable limit workaround: 7 params per row, keep batches small
	if batchSize > 100 {
		batchSize = 100
	}
	return chunked(rows, batchSize, func(batch []model.NewsRow) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO news (country_id, source, author, title, description, url, published_at)
		VALUES (:country_id, :source, :author, :title, :description, :url, :published_at)`,
			batch)
		return err
	})
}

type sqliteCountryRepository struct {
	db *sqlx.DB
}

func (r *sqliteCountryRepository) GetCountryByID(ctx context.Context, id int64) (*model.CountryRow, error) {
	var country model.CountryRow
	if err := r.db.GetContext(ctx, &country, "SELECT * FROM countries WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *sqliteCountryRepository) GetCountryCodes(ctx context.Context) (map[string]int64, error) {
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

func (r *sqliteCountryRepository) UpsertCountries(ctx context.Context, countries []model.CountryRow) error {
	return chunked(countries, 50, func(batch []model.CountryRow) error {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO countries (name, alpha2code, alpha3code, capital, region, subregion,
			population, latitude, longitude, demonym, area, numeric_code, flag)
		VALUES (:name, :alpha2code, :alpha3code, :capital, :region, :subregion,
			:population, :latitude, :longitude, :demonym, :area, :numeric_code, :flag)
		ON CONFLICT (alpha2code) DO UPDATE SET
			name = excluded.name,
			alpha3code = excluded.alpha3code,
			capital = excluded.capital,
			region = excluded.region,
			subregion = excluded.subregion,
			population = excluded.population,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			demonym = excluded.demonym,
			area = excluded.area,
			numeric_code = excluded.numeric_code,
			flag = excluded.flag`,
			batch)
		return err
	})
}
