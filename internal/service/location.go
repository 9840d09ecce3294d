package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// LocationService composes country metadata, current weather and currency
// rates into a single location view.
type LocationService struct {
	countries     CountryResolver
	weatherClient WeatherProvider
	ratesClient   RatesProvider
}

// NewLocationService creates a new location service instance
func NewLocationService(
	countries CountryResolver,
	weatherClient WeatherProvider,
	ratesClient RatesProvider,
) *LocationService {
	return &LocationService{
		countries:     countries,
		weatherClient: weatherClient,
		ratesClient:   ratesClient,
	}
}

// GetWeather fetches current weather for a validated location
func (s *LocationService) GetWeather(ctx context.Context, loc model.Location) *model.WeatherInfo {
	return s.weatherClient.GetWeather(ctx, fmt.Sprintf("%s,%s", loc.City, loc.Alpha2Code))
}

// GetLocationInfo builds the composite view for a location. The country is
// resolved from the local store first; the provider is consulted only for
// codes not yet cached. No country means a nil result. Missing weather or
// rates degrade to zero values rather than failing the whole lookup.
func (s *LocationService) GetLocationInfo(ctx context.Context, loc model.Location) (*model.LocationInfo, error) {
	country, err := s.countries.ResolveCountry(ctx, loc.Alpha2Code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, nil
	}

	info := &model.LocationInfo{
		Location: *country,
		City: model.City{
			Name:      loc.City,
			Country:   country.CountryShort,
			Latitude:  country.Latitude,
			Longitude: country.Longitude,
		},
		CurrencyRates: map[string]float64{},
	}

	if weather := s.GetWeather(ctx, loc); weather != nil {
		info.Weather = *weather
	}

	// lowest code wins for multi-currency countries, keeping responses stable
	codes := make([]string, 0, len(country.Currencies))
	for currency := range country.Currencies {
		codes = append(codes, currency.Code)
	}
	sort.Strings(codes)
	if len(codes) > 0 {
		if rates := s.ratesClient.GetRates(ctx, codes[0]); rates != nil {
			info.CurrencyRates = rates.Rates
		}
	}

	return info, nil
}
