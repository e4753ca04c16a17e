package flights

import (
	"fmt"
	"slices"
)

// Merge joins every flight with its source and destination airports. The
// result has one entry per flight, in input order. An airport id with no
// match leaves the corresponding field nil.
func Merge(flights []Flight, airports []Airport) ([]MergedFlight, error) {
	if flights == nil {
		return nil, fmt.Errorf("merge flights: flights is nil: %w", ErrInvalidArgument)
	}
	if airports == nil {
		return nil, fmt.Errorf("merge flights: airports is nil: %w", ErrInvalidArgument)
	}

	index := indexAirports(airports)

	merged := make([]MergedFlight, 0, len(flights))
	for _, flight := range flights {
		merged = append(merged, MergedFlight{
			SourceAirport:      index[flight.SourceAirportID],
			DestinationAirport: index[flight.DestinationAirportID],
			Airline: Airline{
				Code:    flight.AirlineCode,
				Name:    flight.AirlineName,
				Country: flight.AirlineCountry,
			},
			Aircraft:  slices.Clone(flight.Aircraft),
			Codeshare: flight.Codeshare,
		})
	}

	return merged, nil
}

// indexAirports maps id to a private copy of the first airport carrying it
func indexAirports(airports []Airport) map[int]*Airport {
	copies := slices.Clone(airports)
	index := make(map[int]*Airport, len(copies))
	for i := range copies {
		if _, exists := index[copies[i].ID]; !exists {
			index[copies[i].ID] = &copies[i]
		}
	}
	return index
}

// FindAirport returns the first airport with the given id
func FindAirport(airports []Airport, id int) (Airport, error) {
	for _, airport := range airports {
		if airport.ID == id {
			return airport, nil
		}
	}
	return Airport{}, fmt.Errorf("airport %d: %w", id, ErrNotFound)
}
