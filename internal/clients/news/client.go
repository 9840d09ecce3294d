package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// Client calls the top-headlines endpoint of the news provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new news provider client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetNews fetches headlines for an alpha-2 country code.
// Provider or transport failures and empty result sets both come back as nil.
func (c *Client) GetNews(ctx context.Context, countryCode string) []model.NewsItem {
	endpoint := fmt.Sprintf("%s/top-headlines", c.baseURL)
	params := url.Values{}
	params.Add("country", countryCode)
	params.Add("apiKey", c.apiKey)

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
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Author      *string   `json:"author"`
			Title       string    `json:"title"`
			Description *string   `json:"description"`
			URL         *string   `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	if len(payload.Articles) == 0 {
		return nil
	}

	items := make([]model.NewsItem, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		items = append(items, model.NewsItem{
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return items
}
