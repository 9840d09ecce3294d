package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// Client calls the current-weather endpoint of the weather provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new weather provider client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetWeather fetches current weather for a "City,CountryCode" location.
// Any provider or transport failure is treated as "no data available" and
// reported as a nil result, never as an error.
func (c *Client) GetWeather(ctx context.Context, location string) *model.WeatherInfo {
	endpoint := fmt.Sprintf("%s/weather", c.baseURL)
	params := url.Values{}
	params.Add("units", "metric")
	params.Add("q", location)
	params.Add("appid", c.apiKey)

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

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Pressure int     `json:"pressure"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Visibility int   `json:"visibility"`
		Dt         int64 `json:"dt"`
		Timezone   int   `json:"timezone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return &model.WeatherInfo{
		Temp:        payload.Main.Temp,
		Pressure:    payload.Main.Pressure,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Description: description,
		Visibility:  payload.Visibility,
		DT:          time.Unix(payload.Dt, 0).UTC(),
		Timezone:    payload.Timezone,
	}
}
