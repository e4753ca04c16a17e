package flights

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ResultLimit caps the lists returned by the combined filters
const ResultLimit = 10

// newCollator returns a collator for display ordering. Collators keep
// internal buffers, so each call gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// SortAirportsByName returns a copy of airports ordered by name
func SortAirportsByName(airports []Airport) []Airport {
	col := newCollator()
	sorted := slices.Clone(airports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// AirlineNames returns the distinct airline names, sorted
func AirlineNames(flights []Flight) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, f := range flights {
		if _, ok := seen[f.AirlineName]; ok {
			continue
		}
		seen[f.AirlineName] = struct{}{}
		names = append(names, f.AirlineName)
	}
	sort.Strings(names)
	return names
}

// AircraftTypes returns every distinct aircraft type flown, sorted
func AircraftTypes(flights []Flight) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, f := range flights {
		for _, t := range f.Aircraft {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// Cities returns the distinct cities in the order their airports appear
// when sorted by name
func Cities(airports []Airport) []string {
	seen := make(map[string]struct{})
	cities := make([]string, 0)
	for _, a := range SortAirportsByName(airports) {
		if strings.TrimSpace(a.City) == "" {
			continue
		}
		if _, ok := seen[a.City]; ok {
			continue
		}
		seen[a.City] = struct{}{}
		cities = append(cities, a.City)
	}
	return cities
}

// OnlyTen returns at most the first ResultLimit items
func OnlyTen[T any](list []T) []T {
	return list[:min(ResultLimit, len(list))]
}

// SourceAirportID matches flights departing from the airport id
type SourceAirportID int

func (id SourceAirportID) Matches(f MergedFlight) bool {
	return f.SourceAirport != nil && f.SourceAirport.ID == int(id)
}

// DestinationAirportID matches flights arriving at the airport id
type DestinationAirportID int

func (id DestinationAirportID) Matches(f MergedFlight) bool {
	return f.DestinationAirport != nil && f.DestinationAirport.ID == int(id)
}

// FlightCriteria selects flights by dropdown values. A nil airport id or an
// empty name means "any"; id 0 is a real airport.
type FlightCriteria struct {
	SourceAirportID      *int
	DestinationAirportID *int
	Airline              string
	Aircraft             string
}

// Predicate combines the set criteria into one predicate
func (c FlightCriteria) Predicate() Predicate[MergedFlight] {
	var ps []Predicate[MergedFlight]
	if c.SourceAirportID != nil {
		ps = append(ps, SourceAirportID(*c.SourceAirportID))
	}
	if c.DestinationAirportID != nil {
		ps = append(ps, DestinationAirportID(*c.DestinationAirportID))
	}
	if c.Airline != "" {
		ps = append(ps, AirlineName(c.Airline))
	}
	if c.Aircraft != "" {
		ps = append(ps, AircraftType(c.Aircraft))
	}
	return All(ps...)
}

// FilterFlights returns up to ResultLimit flights matching every set criterion
func FilterFlights(merged []MergedFlight, criteria FlightCriteria) []MergedFlight {
	return OnlyTen(filter(merged, criteria.Predicate()))
}

// FilterAirports returns up to ResultLimit airports in the city (if set)
// whose name contains the search term (if set)
func FilterAirports(airports []Airport, city, searchTerm string) []Airport {
	var ps []Predicate[Airport]
	if city != "" {
		ps = append(ps, ByCity(city))
	}
	if strings.TrimSpace(searchTerm) != "" {
		ps = append(ps, ByNameContaining(searchTerm))
	}
	return OnlyTen(filter(airports, All(ps...)))
}

func filter[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0)
	for _, item := range items {
		if p.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// FlightInfo formats one flight as a short multi-line description
func FlightInfo(f MergedFlight) string {
	return fmt.Sprintf("Flight Info:\nSource Airport: %s\nDestination Airport: %s\nAirline: %s\nAircraft: %s\nCodeshare: %t",
		airportName(f.SourceAirport),
		airportName(f.DestinationAirport),
		f.Airline.Name,
		strings.Join(f.Aircraft, ", "),
		f.Codeshare,
	)
}

func airportName(a *Airport) string {
	if a == nil {
		return "unknown"
	}
	return a.Name
}
