package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_GetLocationInfo(t *testing.T) {
	aland := model.Country{
		CountryShort: model.CountryShort{Name: "Åland Islands", Alpha2Code: "AX"},
		Capital:      "Mariehamn",
		Population:   28875,
		Currencies:   model.NewCurrencySet(model.CurrencyInfo{Code: "EUR"}),
		Languages:    model.NewLanguageSet(model.LanguageInfo{Name: "Swedish", NativeName: "svenska"}),
	}
	weather := &model.WeatherInfo{
		Temp:        13.92,
		Pressure:    1023,
		Humidity:    54,
		WindSpeed:   4.63,
		Description: "scattered clouds",
		Visibility:  10000,
		DT:          time.Unix(1661870592, 0).UTC(),
		Timezone:    7200,
	}
	loc := model.Location{City: "Mariehamn", Alpha2Code: "AX"}

	t.Run("composite view assembled", func(t *testing.T) {
		resolver := new(MockCountryResolver)
		weatherClient := new(MockWeatherProvider)
		ratesClient := new(MockRatesProvider)

		resolver.On("ResolveCountry", mock.Anything, "AX").Return(&aland, nil)
		weatherClient.On("GetWeather", mock.Anything, "Mariehamn,AX").Return(weather)
		ratesClient.On("GetRates", mock.Anything, "EUR").Return(&model.CurrencyRates{
			Base:  "EUR",
			Date:  "2022-09-14",
			Rates: map[string]float64{"USD": 0.99},
		})

		svc := NewLocationService(resolver, weatherClient, ratesClient)
		info, err := svc.GetLocationInfo(context.Background(), loc)

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "Åland Islands", info.Location.Name)
		assert.Equal(t, "Mariehamn", info.City.Name)
		assert.Equal(t, "AX", info.City.Country.Alpha2Code)
		assert.Equal(t, *weather, info.Weather)
		assert.Equal(t, 0.99, info.CurrencyRates["USD"])
	})

	t.Run("unknown country is absent", func(t *testing.T) {
		resolver := new(MockCountryResolver)
		resolver.On("ResolveCountry", mock.Anything, "ZZ").Return(nil, nil)

		svc := NewLocationService(resolver, new(MockWeatherProvider), new(MockRatesProvider))
		info, err := svc.GetLocationInfo(context.Background(), model.Location{City: "Nowhere", Alpha2Code: "ZZ"})

		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("missing weather and rates degrade to zero values", func(t *testing.T) {
		resolver := new(MockCountryResolver)
		weatherClient := new(MockWeatherProvider)
		ratesClient := new(MockRatesProvider)

		resolver.On("ResolveCountry", mock.Anything, "AX").Return(&aland, nil)
		weatherClient.On("GetWeather", mock.Anything, "Mariehamn,AX").Return(nil)
		ratesClient.On("GetRates", mock.Anything, "EUR").Return(nil)

		svc := NewLocationService(resolver, weatherClient, ratesClient)
		info, err := svc.GetLocationInfo(context.Background(), loc)

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, model.WeatherInfo{}, info.Weather)
		assert.Empty(t, info.CurrencyRates)
	})

	t.Run("lowest currency code queried for multi-currency countries", func(t *testing.T) {
		panama := model.Country{
			CountryShort: model.CountryShort{Name: "Panama", Alpha2Code: "PA"},
			Currencies: model.NewCurrencySet(
				model.CurrencyInfo{Code: "USD"},
				model.CurrencyInfo{Code: "PAB"},
			),
		}

		resolver := new(MockCountryResolver)
		weatherClient := new(MockWeatherProvider)
		ratesClient := new(MockRatesProvider)

		resolver.On("ResolveCountry", mock.Anything, "PA").Return(&panama, nil)
		weatherClient.On("GetWeather", mock.Anything, mock.Anything).Return(nil)
		ratesClient.On("GetRates", mock.Anything, "PAB").Return(&model.CurrencyRates{
			Base:  "PAB",
			Rates: map[string]float64{"USD": 1.0},
		})

		svc := NewLocationService(resolver, weatherClient, ratesClient)
		info, err := svc.GetLocationInfo(context.Background(), model.Location{City: "Panama City", Alpha2Code: "PA"})

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, 1.0, info.CurrencyRates["USD"])
		ratesClient.AssertNotCalled(t, "GetRates", mock.Anything, "USD")
	})

	t.Run("cached country without currencies skips rates", func(t *testing.T) {
		cached := model.Country{
			CountryShort: model.CountryShort{Name: "Estonia", Alpha2Code: "EE"},
		}

		resolver := new(MockCountryResolver)
		weatherClient := new(MockWeatherProvider)
		ratesClient := new(MockRatesProvider)

		resolver.On("ResolveCountry", mock.Anything, "EE").Return(&cached, nil)
		weatherClient.On("GetWeather", mock.Anything, mock.Anything).Return(nil)

		svc := NewLocationService(resolver, weatherClient, ratesClient)
		info, err := svc.GetLocationInfo(context.Background(), model.Location{City: "Tallinn", Alpha2Code: "EE"})

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Empty(t, info.CurrencyRates)
		ratesClient.AssertNotCalled(t, "GetRates")
	})

	t.Run("resolution failure propagates", func(t *testing.T) {
		resolver := new(MockCountryResolver)
		resolver.On("ResolveCountry", mock.Anything, "AX").Return(nil, errors.New("db down"))

		svc := NewLocationService(resolver, new(MockWeatherProvider), new(MockRatesProvider))
		info, err := svc.GetLocationInfo(context.Background(), loc)

		require.Error(t, err)
		assert.Nil(t, info)
	})
}

func TestLocationService_GetWeather(t *testing.T) {
	weatherClient := new(MockWeatherProvider)
	weatherClient.On("GetWeather", mock.Anything, "Tallinn,EE").Return(&model.WeatherInfo{Temp: 5})

	svc := NewLocationService(new(MockCountryResolver), weatherClient, new(MockRatesProvider))
	got := svc.GetWeather(context.Background(), model.Location{City: "Tallinn", Alpha2Code: "EE"})

	require.NotNil(t, got)
	assert.Equal(t, 5.0, got.Temp)
}
