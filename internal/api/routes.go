package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/yegors/airpairs/internal/config"
	"github.com/yegors/airpairs/internal/dataset"
	"github.com/yegors/airpairs/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	config     config.ServerConfig
	logger     *logger.Logger
}

// NewRouter creates a new API router over a loaded dataset
func NewRouter(ds *dataset.Dataset, cfg config.ServerConfig, log *logger.Logger) *Router {
	return &Router{
		handler:    NewHandler(ds, log),
		middleware: NewMiddleware(log),
		config:     cfg,
		logger:     log.Named("api-router"),
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.CORS(r.config.CORSAllowedOrigins))

	router.Route("/api/v1", func(router chi.Router) {
		router.Get("/health", r.handler.GetHealth)

		// Airport routes
		router.Get("/airports", r.handler.GetAirports)
		router.Get("/airports/search", r.handler.SearchAirports)
		router.Get("/airports/{id}", r.handler.GetAirportByID)

		// Flight routes
		router.Get("/flights", r.handler.GetFlights)
		router.Get("/flights/query", r.handler.QueryFlights)
		router.Get("/facets", r.handler.GetFacets)

		// Pair statistics
		router.Get("/pairs", r.handler.GetPairs)
		router.Get("/stats/flights", r.handler.GetFlightCountStats)
		router.Get("/stats/time-difference", r.handler.GetTimeDifferenceStats)
	})

	if dir := r.config.StaticFilesDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			router.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			r.logger.Warn("Static files directory not found, page will not be served",
				logger.String("dir", dir))
		}
	}

	return router
}
