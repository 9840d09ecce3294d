package service

import (
	"context"

	"github.com/alexivanou/geoinfo-api/internal/model"
)

// NewsServiceInterface defines the news service surface for handlers and tests
type NewsServiceInterface interface {
	GetNews(ctx context.Context, countryCode string) ([]model.NewsRow, error)
	SaveNews(ctx context.Context, countryID int64, items []model.NewsItem) error
}

// LocationServiceInterface defines the location service surface for handlers and tests
type LocationServiceInterface interface {
	GetWeather(ctx context.Context, loc model.Location) *model.WeatherInfo
	GetLocationInfo(ctx context.Context, loc model.Location) (*model.LocationInfo, error)
}
