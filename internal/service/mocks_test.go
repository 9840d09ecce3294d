package service

import (
	"context"

	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockNewsRepository implements repository.NewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) ListByCountryCode(ctx context.Context, code string, match config.MatchStrategy) ([]model.NewsRow, error) {
	args := m.Called(ctx, code, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsRow), args.Error(1)
}

func (m *MockNewsRepository) BulkInsertNews(ctx context.Context, rows []model.NewsRow, batchSize int) error {
	args := m.Called(ctx, rows, batchSize)
	return args.Error(0)
}

// MockCountryRepository implements repository.CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) GetCountryByID(ctx context.Context, id int64) (*model.CountryRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CountryRow), args.Error(1)
}

func (m *MockCountryRepository) GetCountryCodes(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCountryRepository) UpsertCountries(ctx context.Context, countries []model.CountryRow) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

// MockCountryResolver implements CountryResolver
type MockCountryResolver struct {
	mock.Mock
}

func (m *MockCountryResolver) GetCountryCodes(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCountryResolver) FetchCountries(ctx context.Context, countryCode string) error {
	args := m.Called(ctx, countryCode)
	return args.Error(0)
}

func (m *MockCountryResolver) ResolveCountry(ctx context.Context, countryCode string) (*model.Country, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

// MockNewsProvider implements NewsProvider
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) GetNews(ctx context.Context, countryCode string) []model.NewsItem {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.NewsItem)
}

// MockCountryProvider implements CountryProvider
type MockCountryProvider struct {
	mock.Mock
}

func (m *MockCountryProvider) GetCountries(ctx context.Context, countryCode string) []model.Country {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Country)
}

// MockWeatherProvider implements WeatherProvider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) GetWeather(ctx context.Context, location string) *model.WeatherInfo {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.WeatherInfo)
}

// MockRatesProvider implements RatesProvider
type MockRatesProvider struct {
	mock.Mock
}

func (m *MockRatesProvider) GetRates(ctx context.Context, base string) *model.CurrencyRates {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.CurrencyRates)
}
