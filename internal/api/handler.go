package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/alexivanou/geoinfo-api/internal/model"
	"github.com/alexivanou/geoinfo-api/internal/service"
	"github.com/gorilla/mux"
)

// Handler handles HTTP requests
type Handler struct {
	news     service.NewsServiceInterface
	location service.LocationServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(news service.NewsServiceInterface, location service.LocationServiceInterface) *Handler {
	return &Handler{news: news, location: location}
}

// GetNews handles GET /api/v1/news/{code}
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	if code == "" {
		http.Error(w, "country code is required", http.StatusBadRequest)
		return
	}

	news, err := h.news.GetNews(r.Context(), code)
	if err != nil {
		log.Printf("Error getting news: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if news == nil {
		http.Error(w, "no news found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(news); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

// GetWeather handles GET /api/v1/weather
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.parseLocation(w, r.URL.Query().Get("city"), r.URL.Query().Get("country"))
	if !ok {
		return
	}

	weather := h.location.GetWeather(r.Context(), loc)
	if weather == nil {
		http.Error(w, "no weather data available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(weather); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

// GetLocationInfo handles GET /api/v1/location/{code}
func (h *Handler) GetLocationInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	loc, ok := h.parseLocation(w, r.URL.Query().Get("city"), vars["code"])
	if !ok {
		return
	}

	info, err := h.location.GetLocationInfo(r.Context(), loc)
	if err != nil {
		log.Printf("Error getting location info: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if info == nil {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) parseLocation(w http.ResponseWriter, city, country string) (model.Location, bool) {
	loc, err := model.NewLocation(city, country)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "invalid location", http.StatusBadRequest)
		}
		return model.Location{}, false
	}
	return loc, true
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
