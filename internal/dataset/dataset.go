package dataset

import (
	"fmt"

	"github.com/yegors/airpairs/internal/flights"
)

// Dataset holds the two input collections and their merged form. It is
// populated once after loading and is read-only afterwards, so it can be
// shared between goroutines.
type Dataset struct {
	Source   string
	Airports []flights.Airport
	Flights  []flights.Flight
	Merged   []flights.MergedFlight
}

// New merges flights with airports and wraps the result
func New(source string, airports []flights.Airport, raw []flights.Flight) (*Dataset, error) {
	merged, err := flights.Merge(raw, airports)
	if err != nil {
		return nil, fmt.Errorf("failed to merge %s dataset: %w", source, err)
	}

	return &Dataset{
		Source:   source,
		Airports: airports,
		Flights:  raw,
		Merged:   merged,
	}, nil
}

// Pairs enumerates airport pairs from scratch on every call
func (d *Dataset) Pairs() []flights.AirportPair {
	return flights.EnumeratePairs(d.Merged)
}

// FlightCountStats computes flight-count statistics over fresh pairs
func (d *Dataset) FlightCountStats() (*flights.StatsSummary, error) {
	return flights.FlightCountStats(d.Pairs())
}

// TimeDifferenceStats computes time-difference statistics over fresh pairs
func (d *Dataset) TimeDifferenceStats() (*flights.StatsSummary, error) {
	return flights.TimeDifferenceStats(d.Pairs())
}

// Facets are the value lists offered by the filter dropdowns
type Facets struct {
	Airlines []string `json:"airlines"`
	Aircraft []string `json:"aircraft"`
	Cities   []string `json:"cities"`
}

// Facets collects the dropdown values for this dataset
func (d *Dataset) Facets() Facets {
	return Facets{
		Airlines: flights.AirlineNames(d.Flights),
		Aircraft: flights.AircraftTypes(d.Flights),
		Cities:   flights.Cities(d.Airports),
	}
}
