package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yegors/airpairs/internal/dataset"
	"github.com/yegors/airpairs/internal/flights"
	"github.com/yegors/airpairs/pkg/logger"
)

// Handler serves read-only views of a dataset
type Handler struct {
	dataset *dataset.Dataset
	logger  *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(ds *dataset.Dataset, log *logger.Logger) *Handler {
	return &Handler{
		dataset: ds,
		logger:  log.Named("api-handler"),
	}
}

// ListResponse wraps list results
type ListResponse[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
	Items     []T       `json:"items"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	return ListResponse[T]{
		Timestamp: time.Now().UTC(),
		Count:     len(items),
		Items:     items,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", logger.Error(err))
	}
}

// writeError maps engine errors onto HTTP statuses
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, flights.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, flights.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, flights.ErrEmptyInput):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", logger.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// queryValue returns a query parameter, treating the dropdown "any" option as unset
func queryValue(r *http.Request, key string) string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if strings.EqualFold(v, "any") {
		return ""
	}
	return v
}

// queryAirportID returns nil when the parameter is unset or "any"
func queryAirportID(r *http.Request, key string) (*int, error) {
	v := queryValue(r, key)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an airport id: %w", key, flights.ErrInvalidArgument)
	}
	return &id, nil
}

// GetHealth reports the loaded dataset size
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"source":   h.dataset.Source,
		"airports": len(h.dataset.Airports),
		"flights":  len(h.dataset.Flights),
	})
}

// GetAirports returns all airports sorted by name
func (h *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, newListResponse(flights.SortAirportsByName(h.dataset.Airports)))
}

// GetAirportByID returns a single airport
func (h *Handler) GetAirportByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, fmt.Errorf("airport id: %w", flights.ErrInvalidArgument))
		return
	}

	airport, err := flights.FindAirport(h.dataset.Airports, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, airport)
}

// SearchAirports filters airports by city and name search term
func (h *Handler) SearchAirports(w http.ResponseWriter, r *http.Request) {
	airports := flights.FilterAirports(h.dataset.Airports, queryValue(r, "city"), queryValue(r, "q"))
	h.writeJSON(w, http.StatusOK, newListResponse(airports))
}

// GetFlights filters flights by the dropdown criteria
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	source, err := queryAirportID(r, "source")
	if err != nil {
		h.writeError(w, err)
		return
	}
	destination, err := queryAirportID(r, "destination")
	if err != nil {
		h.writeError(w, err)
		return
	}

	matches := flights.FilterFlights(h.dataset.Merged, flights.FlightCriteria{
		SourceAirportID:      source,
		DestinationAirportID: destination,
		Airline:              queryValue(r, "airline"),
		Aircraft:             queryValue(r, "aircraft"),
	})
	h.writeJSON(w, http.StatusOK, newListResponse(matches))
}

// predicateFor builds the predicate named by the "by" query parameter
func predicateFor(by, value string) (flights.Predicate[flights.MergedFlight], error) {
	switch by {
	case "source_airport":
		return flights.BySourceAirportName(value), nil
	case "destination_airport":
		return flights.ByDestinationAirportName(value), nil
	case "airline":
		return flights.ByAirlineName(value), nil
	case "aircraft":
		return flights.ByAircraftType(value), nil
	case "codeshare":
		codeshare, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("codeshare must be true or false: %w", flights.ErrInvalidArgument)
		}
		return flights.ByCodeshareStatus(codeshare), nil
	default:
		return nil, fmt.Errorf("unknown query %q: %w", by, flights.ErrInvalidArgument)
	}
}

// QueryFlights runs a single predicate over all flights and stamps the matches
func (h *Handler) QueryFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	predicate, err := predicateFor(q.Get("by"), q.Get("value"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	matches, err := flights.MapWithFilter(h.dataset.Merged, predicate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newListResponse(matches))
}

// GetFacets returns the dropdown values
func (h *Handler) GetFacets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.dataset.Facets())
}

// GetPairs returns every airport pair with observed flights
func (h *Handler) GetPairs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, newListResponse(h.dataset.Pairs()))
}

// GetFlightCountStats returns the busiest-pairs statistics
func (h *Handler) GetFlightCountStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dataset.FlightCountStats()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// GetTimeDifferenceStats returns the time-difference statistics
func (h *Handler) GetTimeDifferenceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dataset.TimeDifferenceStats()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
