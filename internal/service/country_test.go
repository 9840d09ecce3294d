package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCountryService_GetCountryCodes(t *testing.T) {
	t.Run("codes returned from repository", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		countryRepo.On("GetCountryCodes", mock.Anything).Return(map[string]int64{"EE": 1, "LV": 2}, nil)

		svc := NewCountryService(countryRepo, new(MockCountryProvider))
		codes, err := svc.GetCountryCodes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(1), codes["EE"])
		assert.Equal(t, int64(2), codes["LV"])
	})

	t.Run("repository error wrapped", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		countryRepo.On("GetCountryCodes", mock.Anything).Return(nil, errors.New("db down"))

		svc := NewCountryService(countryRepo, new(MockCountryProvider))
		_, err := svc.GetCountryCodes(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get country codes")
	})
}

func TestCountryService_ResolveCountry(t *testing.T) {
	row := &model.CountryRow{
		ID:         1,
		Name:       "Ireland",
		Alpha2Code: "IE",
		Capital:    "Dublin",
		Population: 6378000,
	}

	t.Run("cached country served without provider call", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		countryRepo.On("GetCountryCodes", mock.Anything).Return(map[string]int64{"IE": 1}, nil)
		countryRepo.On("GetCountryByID", mock.Anything, int64(1)).Return(row, nil)

		svc := NewCountryService(countryRepo, provider)
		country, err := svc.ResolveCountry(context.Background(), "IE")

		require.NoError(t, err)
		require.NotNil(t, country)
		assert.Equal(t, "Ireland", country.Name)
		assert.Equal(t, "Dublin", country.Capital)
		provider.AssertNotCalled(t, "GetCountries")
	})

	t.Run("unknown code fetched once and persisted", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		ireland := model.Country{
			CountryShort: model.CountryShort{Name: "Ireland", Alpha2Code: "IE"},
			Currencies:   model.NewCurrencySet(model.CurrencyInfo{Code: "EUR"}),
		}

		countryRepo.On("GetCountryCodes", mock.Anything).Return(map[string]int64{}, nil)
		provider.On("GetCountries", mock.Anything, "IE").Return([]model.Country{ireland}).Once()
		countryRepo.On("UpsertCountries", mock.Anything, mock.MatchedBy(func(rows []model.CountryRow) bool {
			return len(rows) == 1 && rows[0].Alpha2Code == "IE"
		})).Return(nil)

		svc := NewCountryService(countryRepo, provider)
		country, err := svc.ResolveCountry(context.Background(), "IE")

		require.NoError(t, err)
		require.NotNil(t, country)
		assert.Contains(t, country.Currencies, model.CurrencyInfo{Code: "EUR"})
		provider.AssertExpectations(t)
		countryRepo.AssertExpectations(t)
	})

	t.Run("unknown everywhere is absent", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		countryRepo.On("GetCountryCodes", mock.Anything).Return(map[string]int64{}, nil)
		provider.On("GetCountries", mock.Anything, "ZZ").Return(nil)

		svc := NewCountryService(countryRepo, provider)
		country, err := svc.ResolveCountry(context.Background(), "ZZ")

		require.NoError(t, err)
		assert.Nil(t, country)
		countryRepo.AssertNotCalled(t, "UpsertCountries")
	})

	t.Run("codes lookup error wrapped", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		countryRepo.On("GetCountryCodes", mock.Anything).Return(nil, errors.New("db down"))

		svc := NewCountryService(countryRepo, new(MockCountryProvider))
		_, err := svc.ResolveCountry(context.Background(), "IE")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get country codes")
	})
}

func TestCountryService_FetchCountries(t *testing.T) {
	estonia := model.Country{
		CountryShort: model.CountryShort{Name: "Estonia", Alpha2Code: "EE"},
		Alpha3Code:   "EST",
		Capital:      "Tallinn",
		Population:   1320000,
		Currencies:   model.NewCurrencySet(model.CurrencyInfo{Code: "EUR"}),
	}

	t.Run("provider data persisted", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		provider.On("GetCountries", mock.Anything, "EE").Return([]model.Country{estonia})
		countryRepo.On("UpsertCountries", mock.Anything, mock.MatchedBy(func(rows []model.CountryRow) bool {
			return len(rows) == 1 && rows[0].Alpha2Code == "EE" && rows[0].Capital == "Tallinn"
		})).Return(nil)

		svc := NewCountryService(countryRepo, provider)
		err := svc.FetchCountries(context.Background(), "EE")

		require.NoError(t, err)
		countryRepo.AssertExpectations(t)
	})

	t.Run("provider absence is a no-op", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		provider.On("GetCountries", mock.Anything, "ZZ").Return(nil)

		svc := NewCountryService(countryRepo, provider)
		err := svc.FetchCountries(context.Background(), "ZZ")

		require.NoError(t, err)
		countryRepo.AssertNotCalled(t, "UpsertCountries")
	})

	t.Run("store error wrapped", func(t *testing.T) {
		countryRepo := new(MockCountryRepository)
		provider := new(MockCountryProvider)

		provider.On("GetCountries", mock.Anything, "EE").Return([]model.Country{estonia})
		countryRepo.On("UpsertCountries", mock.Anything, mock.Anything).Return(errors.New("db down"))

		svc := NewCountryService(countryRepo, provider)
		err := svc.FetchCountries(context.Background(), "EE")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store countries")
	})
}
