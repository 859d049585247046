package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"jamesfarrell.me/video-to-recipe/internal/api/handlers"
	"jamesfarrell.me/video-to-recipe/internal/api/middleware"
	"jamesfarrell.me/video-to-recipe/internal/metrics"
)

func NewRouter(p handlers.Pipeline, apiSecret string, log zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recoverer,
		metrics.InstrumentHandler,
	)

	// Public routes
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Protected routes
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.APIKey(apiSecret))

	recipeHandler := handlers.NewRecipeHandler(p)
	protected.HandleFunc("/extract", recipeHandler.Extract).Methods(http.MethodPost)

	return r
}
