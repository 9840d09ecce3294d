package api

import (
	"github.com/alexivanou/geoinfo-api/internal/config"
	"github.com/alexivanou/geoinfo-api/internal/service"
	"github.com/alexivanou/geoinfo-api/internal/stats"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP router
func NewRouter(
	news service.NewsServiceInterface,
	location service.LocationServiceInterface,
	statsCollector *stats.Collector,
	cfg config.ServerConfig,
) *mux.Router {
	handler := NewHandler(news, location)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	v1.HandleFunc("/news/{code}", handler.GetNews).Methods("GET")
	v1.HandleFunc("/weather", handler.GetWeather).Methods("GET")
	v1.HandleFunc("/location/{code}", handler.GetLocationInfo).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
