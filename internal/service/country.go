package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/alexivanou/geoinfo-api/internal/repository"
)

// CountryService resolves country codes against the local store and pulls
// missing country metadata from the country provider.
type CountryService struct {
	countryRepo repository.CountryRepository
	provider    CountryProvider
}

// NewCountryService creates a new country service instance
func NewCountryService(countryRepo repository.CountryRepository, provider CountryProvider) *CountryService {
	return &CountryService{
		countryRepo: countryRepo,
		provider:    provider,
	}
}

// GetCountryCodes returns the alpha-2 codes known locally mapped to their ids
func (s *CountryService) GetCountryCodes(ctx context.Context) (map[string]int64, error) {
	codes, err := s.countryRepo.GetCountryCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get country codes: %w", err)
	}
	return codes, nil
}

// FetchCountries pulls metadata for a country code from the provider and
// persists it. A provider with no data for the code is a no-op, not an error.
func (s *CountryService) FetchCountries(ctx context.Context, countryCode string) error {
	countries := s.provider.GetCountries(ctx, countryCode)
	if len(countries) == 0 {
		return nil
	}

	rows := make([]model.CountryRow, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, countryToRow(c))
	}

	if err := s.countryRepo.UpsertCountries(ctx, rows); err != nil {
		return fmt.Errorf("failed to store countries: %w", err)
	}
	return nil
}

// ResolveCountry returns the country for an alpha-2 code, serving from the
// local store when the code is known and falling back to a single provider
// fetch (persisted) when it is not. A nil result means the code is unknown
// both locally and remotely. Cached countries carry no currency or language
// sets; only the persisted columns survive the round trip.
func (s *CountryService) ResolveCountry(ctx context.Context, countryCode string) (*model.Country, error) {
	codes, err := s.countryRepo.GetCountryCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get country codes: %w", err)
	}

	if id, ok := codes[countryCode]; ok {
		row, err := s.countryRepo.GetCountryByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get country: %w", err)
		}
		if row != nil {
			country := rowToCountry(row)
			return &country, nil
		}
	}

	countries := s.provider.GetCountries(ctx, countryCode)
	if len(countries) == 0 {
		return nil, nil
	}

	rows := make([]model.CountryRow, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, countryToRow(c))
	}
	if err := s.countryRepo.UpsertCountries(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to store countries: %w", err)
	}

	return &countries[0], nil
}

func countryToRow(c model.Country) model.CountryRow {
	return model.CountryRow{
		Name:        c.Name,
		Alpha2Code:  c.Alpha2Code,
		Alpha3Code:  c.Alpha3Code,
		Capital:     c.Capital,
		Region:      c.Region,
		Subregion:   c.Subregion,
		Population:  c.Population,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Demonym:     c.Demonym,
		Area:        c.Area,
		NumericCode: c.NumericCode,
		Flag:        c.Flag,
	}
}

func rowToCountry(r *model.CountryRow) model.Country {
	return model.Country{
		CountryShort: model.CountryShort{
			Name:       r.Name,
			Alpha2Code: r.Alpha2Code,
		},
		Alpha3Code:  r.Alpha3Code,
		Capital:     r.Capital,
		Region:      r.Region,
		Subregion:   r.Subregion,
		Population:  r.Population,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Demonym:     r.Demonym,
		Area:        r.Area,
		NumericCode: r.NumericCode,
		Flag:        r.Flag,
	}
}
