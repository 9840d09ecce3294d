package service

import (
	"context"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// WeatherProvider fetches current weather for a "City,CC" location.
// A nil result means the provider had no data; that is not an error.
type WeatherProvider interface {
	GetWeather(ctx context.Context, location string) *model.WeatherInfo
}

// NewsProvider fetches raw headlines for a country code
type NewsProvider interface {
	GetNews(ctx context.Context, countryCode string) []model.NewsItem
}

// CountryProvider fetches country metadata for a country code
type CountryProvider interface {
	GetCountries(ctx context.Context, countryCode string) []model.Country
}

// RatesProvider fetches exchange rates for a base currency
type RatesProvider interface {
	GetRates(ctx context.Context, base string) *model.CurrencyRates
}
