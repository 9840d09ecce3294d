package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// Client calls the country metadata provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new country provider client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetCountries fetches metadata for an alpha-2 country code.
// Failures come back as nil, not as errors.
func (c *Client) GetCountries(ctx context.Context, countryCode string) []model.Country {
	endpoint := fmt.Sprintf("%s/alpha/%s", c.baseURL, url.PathEscape(countryCode))
	params := url.Values{}
	params.Add("access_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload []struct {
		Name        string    `json:"name"`
		Alpha2Code  string    `json:"alpha2Code"`
		Alpha3Code  string    `json:"alpha3Code"`
		Capital     string    `json:"capital"`
		Region      string    `json:"region"`
		Subregion   string    `json:"subregion"`
		Population  int       `json:"population"`
		Latlng      []float64 `json:"latlng"`
		Demonym     string    `json:"demonym"`
		Area        float64   `json:"area"`
		NumericCode string    `json:"numericCode"`
		Flag        string    `json:"flag"`
		Currencies  []struct {
			Code string `json:"code"`
		} `json:"currencies"`
		Languages []struct {
			Name       string `json:"name"`
			NativeName string `json:"nativeName"`
		} `json:"languages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	countries := make([]model.Country, 0, len(payload))
	for _, p := range payload {
		var lat, lng float64
		if len(p.Latlng) == 2 {
			lat, lng = p.Latlng[0], p.Latlng[1]
		}

		currencies := model.NewCurrencySet()
		for _, cur := range p.Currencies {
			currencies[model.CurrencyInfo{Code: cur.Code}] = struct{}{}
		}
		languages := model.NewLanguageSet()
		for _, lang := range p.Languages {
			languages[model.LanguageInfo{Name: lang.Name, NativeName: lang.NativeName}] = struct{}{}
		}

		country := model.Country{
			CountryShort: model.CountryShort{
				Name:       p.Name,
				Alpha2Code: p.Alpha2Code,
			},
			Alpha3Code:  p.Alpha3Code,
			Capital:     p.Capital,
			Region:      p.Region,
			Subregion:   p.Subregion,
			Population:  p.Population,
			Latitude:    lat,
			Longitude:   lng,
			Demonym:     p.Demonym,
			Area:        p.Area,
			NumericCode: p.NumericCode,
			Flag:        p.Flag,
			Currencies:  currencies,
			Languages:   languages,
		}
		if err := country.Validate(); err != nil {
			continue
		}
		countries = append(countries, country)
	}

	if len(countries) == 0 {
		return nil
	}
	return countries
}
