package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// Client calls the exchange-rates provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new exchange-rates client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRates fetches the latest exchange rates for a base currency.
// Failures come back as nil, not as errors.
func (c *Client) GetRates(ctx context.Context, base string) *model.CurrencyRates {
	endpoint := fmt.Sprintf("%s/latest", c.baseURL)
	params := url.Values{}
	params.Add("base", base)

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

	var payload model.CurrencyRates
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}
	return &payload
}
