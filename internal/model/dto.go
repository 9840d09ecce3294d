package model

import (
	"encoding/json"
	"sort"
	"time"
)

// Location identifies a city within a country for weather lookups.
// Comparable by value, so it can be used directly as a map key.
type Location struct {
	City       string `json:"city"`
	Alpha2Code string `json:"alpha2code"`
}

// NewLocation validates and builds a Location
func NewLocation(city, alpha2 string) (Location, error) {
	if city == "" {
		return Location{}, newValidationError("city", "must not be empty")
	}
	if len(alpha2) != 2 {
		return Location{}, newValidationError("alpha2code", "must be exactly 2 characters")
	}
	return Location{City: city, Alpha2Code: alpha2}, nil
}

// CurrencyInfo holds a currency identifier (ISO 4217 code)
type CurrencyInfo struct {
	Code string `json:"code"`
}

// LanguageInfo holds a language name and its native spelling
type LanguageInfo struct {
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// CurrencySet is an unordered collection of unique currencies
type CurrencySet map[CurrencyInfo]struct{}

// NewCurrencySet builds a set, collapsing value-equal duplicates
func NewCurrencySet(currencies ...CurrencyInfo) CurrencySet {
	set := make(CurrencySet, len(currencies))
	for _, c := range currencies {
		set[c] = struct{}{}
	}
	return set
}

// MarshalJSON renders the set as a sorted array
func (s CurrencySet) MarshalJSON() ([]byte, error) {
	list := make([]CurrencyInfo, 0, len(s))
	for c := range s {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return json.Marshal(list)
}

// UnmarshalJSON reads the set from an array, collapsing duplicates
func (s *CurrencySet) UnmarshalJSON(data []byte) error {
	var list []CurrencyInfo
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewCurrencySet(list...)
	return nil
}

// LanguageSet is an unordered collection of unique languages
type LanguageSet map[LanguageInfo]struct{}

// NewLanguageSet builds a set, collapsing value-equal duplicates
func NewLanguageSet(languages ...LanguageInfo) LanguageSet {
	set := make(LanguageSet, len(languages))
	for _, l := range languages {
		set[l] = struct{}{}
	}
	return set
}

// MarshalJSON renders the set as a sorted array
func (s LanguageSet) MarshalJSON() ([]byte, error) {
	list := make([]LanguageInfo, 0, len(s))
	for l := range s {
		list = append(list, l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return json.Marshal(list)
}

// UnmarshalJSON reads the set from an array, collapsing duplicates
func (s *LanguageSet) UnmarshalJSON(data []byte) error {
	var list []LanguageInfo
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewLanguageSet(list...)
	return nil
}

// CountryShort is the base projection of a country
type CountryShort struct {
	Name       string `json:"name"`
	Alpha2Code string `json:"alpha2code"`
}

// Country carries the full country metadata fetched from the country provider
type Country struct {
	CountryShort
	Alpha3Code  string      `json:"alpha3code"`
	Capital     string      `json:"capital"`
	Region      string      `json:"region"`
	Subregion   string      `json:"subregion"`
	Population  int         `json:"population"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Demonym     string      `json:"demonym"`
	Area        float64     `json:"area"`
	NumericCode string      `json:"numeric_code"`
	Flag        string      `json:"flag"`
	Currencies  CurrencySet `json:"currencies"`
	Languages   LanguageSet `json:"languages"`
}

// Validate checks the country field constraints
func (c Country) Validate() error {
	if len(c.Alpha2Code) != 2 {
		return newValidationError("alpha2code", "must be exactly 2 characters")
	}
	if c.Population < 0 {
		return newValidationError("population", "must not be negative")
	}
	return nil
}

// City describes a city and the country it belongs to
type City struct {
	Name          string       `json:"name"`
	StateOrRegion *string      `json:"state_or_region"`
	Country       CountryShort `json:"country"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
}

// CurrencyRates holds exchange rates for a base currency on a given date
type CurrencyRates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// WeatherInfo is the current weather snapshot for a location
type WeatherInfo struct {
	Temp        float64   `json:"temp"`
	Pressure    int       `json:"pressure"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Visibility  int       `json:"visibility"`
	DT          time.Time `json:"dt"`
	Timezone    int       `json:"timezone"`
}

// LocationInfo is the composite view returned for a location lookup
type LocationInfo struct {
	Location      Country            `json:"location"`
	City          City               `json:"city"`
	Weather       WeatherInfo        `json:"weather"`
	CurrencyRates map[string]float64 `json:"currency_rates"`
}
