package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/alexivanou/geoinfo-api/internal/repository"
)

// CountryResolver maps alpha-2 codes to persisted country ids, fetching
// unknown countries from the provider on demand.
type CountryResolver interface {
	GetCountryCodes(ctx context.Context) (map[string]int64, error)
	FetchCountries(ctx context.Context, countryCode string) error
	ResolveCountry(ctx context.Context, countryCode string) (*model.Country, error)
}

// NewsService reconciles locally cached news for a country with the news
// provider. When the code is unknown locally it triggers country resolution
// before attributing fetched articles.
type NewsService struct {
	newsRepo    repository.NewsRepository
	countryRepo repository.CountryRepository
	countries   CountryResolver
	provider    NewsProvider
	cfg         config.NewsConfig
}

// NewNewsService creates a new news service instance
func NewNewsService(
	newsRepo repository.NewsRepository,
	countryRepo repository.CountryRepository,
	countries CountryResolver,
	provider NewsProvider,
	cfg config.NewsConfig,
) *NewsService {
	return &NewsService{
		newsRepo:    newsRepo,
		countryRepo: countryRepo,
		countries:   countries,
		provider:    provider,
		cfg:         cfg,
	}
}

// GetNews returns cached news for a country code, fetching from the provider
// when nothing is cached. A nil slice means no news could be obtained or the
// country code could not be resolved; it is never an empty non-nil slice.
//
// Whether freshly fetched articles are persisted before being returned is
// controlled by cfg.PersistFetch (NEWS_PERSIST_FETCHED). With PersistFetch
// off every cache miss refetches remotely and nothing is saved.
func (s *NewsService) GetNews(ctx context.Context, countryCode string) ([]model.NewsRow, error) {
	cached, err := s.newsRepo.ListByCountryCode(ctx, countryCode, s.cfg.Match)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	items := s.provider.GetNews(ctx, countryCode)
	if len(items) == 0 {
		return nil, nil
	}

	countryID, ok, err := s.resolveCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		// fetched news cannot be attributed to an unknown country
		return nil, nil
	}

	rows := make([]model.NewsRow, 0, len(items))
	for _, item := range items {
		row, err := s.buildRow(ctx, item, countryID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	if s.cfg.PersistFetch {
		if err := s.newsRepo.BulkInsertNews(ctx, rows, s.cfg.InsertBatch); err != nil {
			return nil, fmt.Errorf("failed to store news: %w", err)
		}
	}
	return rows, nil
}

// SaveNews bulk-inserts one row per raw item, attributed to the given country.
// An empty input performs no writes.
func (s *NewsService) SaveNews(ctx context.Context, countryID int64, items []model.NewsItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.NewsRow, 0, len(items))
	for _, item := range items {
		row, err := s.buildRow(ctx, item, countryID)
		if err != nil {
			return err
		}
		rows = append(rows, *row)
	}

	if err := s.newsRepo.BulkInsertNews(ctx, rows, s.cfg.InsertBatch); err != nil {
		return fmt.Errorf("failed to store news: %w", err)
	}
	return nil
}

// resolveCountry maps the code to a persisted country id, fetching country
// metadata once when the code is not yet known locally.
func (s *NewsService) resolveCountry(ctx context.Context, countryCode string) (int64, bool, error) {
	codes, err := s.countries.GetCountryCodes(ctx)
	if err != nil {
		return 0, false, err
	}
	if id, ok := codes[countryCode]; ok {
		return id, true, nil
	}

	if err := s.countries.FetchCountries(ctx, countryCode); err != nil {
		return 0, false, err
	}
	codes, err = s.countries.GetCountryCodes(ctx)
	if err != nil {
		return 0, false, err
	}
	id, ok := codes[countryCode]
	return id, ok, nil
}

// buildRow maps a raw item to a news row attributed to the country with the
// given primary key. Absent author, description and url become empty strings.
func (s *NewsService) buildRow(ctx context.Context, item model.NewsItem, countryID int64) (*model.NewsRow, error) {
	country, err := s.countryRepo.GetCountryByID(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	if country == nil {
		return nil, fmt.Errorf("country id %d: %w", countryID, model.ErrNotFound)
	}

	return &model.NewsRow{
		CountryID:   country.ID,
		Source:      item.Source,
		Author:      orEmpty(item.Author),
		Title:       item.Title,
		Description: orEmpty(item.Description),
		URL:         orEmpty(item.URL),
		PublishedAt: item.PublishedAt,
	}, nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
