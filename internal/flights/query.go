package flights

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// isoMillis matches the ISO-8601 layout browsers produce for Date.toISOString
const isoMillis = "2006-01-02T15:04:05.000Z"

// now is swapped out by tests
var now = time.Now

// Stampable is a record that can carry a last-modified timestamp
type Stampable[T any] interface {
	Stamped(lastModified string) T
}

// Predicate decides whether an item is kept by MapWithFilter
type Predicate[T any] interface {
	Matches(item T) bool
}

// PredicateFunc adapts a plain function to a Predicate
type PredicateFunc[T any] func(item T) bool

// Matches calls f(item)
func (f PredicateFunc[T]) Matches(item T) bool {
	return f(item)
}

// MapWithFilter returns a copy of every item the predicate keeps, stamped
// with a single timestamp taken once for the whole call.
func MapWithFilter[T Stampable[T]](items []T, predicate Predicate[T]) ([]T, error) {
	if items == nil {
		return nil, fmt.Errorf("map with filter: items is nil: %w", ErrInvalidArgument)
	}
	if predicate == nil {
		return nil, fmt.Errorf("map with filter: predicate is nil: %w", ErrInvalidArgument)
	}
	if fn, ok := predicate.(PredicateFunc[T]); ok && fn == nil {
		return nil, fmt.Errorf("map with filter: predicate func is nil: %w", ErrInvalidArgument)
	}

	timestamp := now().UTC().Format(isoMillis)

	out := make([]T, 0)
	for _, item := range items {
		if predicate.Matches(item) {
			out = append(out, item.Stamped(timestamp))
		}
	}
	return out, nil
}

// Stamped returns a copy of f with LastModified set
func (f MergedFlight) Stamped(lastModified string) MergedFlight {
	f.LastModified = lastModified
	return f
}

// Stamped returns a copy of a with LastModified set
func (a Airport) Stamped(lastModified string) Airport {
	a.LastModified = lastModified
	return a
}

// SourceAirportName matches flights departing from the named airport
type SourceAirportName string

func (n SourceAirportName) Matches(f MergedFlight) bool {
	return f.SourceAirport != nil && f.SourceAirport.Name == string(n)
}

// DestinationAirportName matches flights arriving at the named airport
type DestinationAirportName string

func (n DestinationAirportName) Matches(f MergedFlight) bool {
	return f.DestinationAirport != nil && f.DestinationAirport.Name == string(n)
}

// AirlineName matches flights operated by the named airline
type AirlineName string

func (n AirlineName) Matches(f MergedFlight) bool {
	return f.Airline.Name == string(n)
}

// CodeshareStatus matches flights by their codeshare flag
type CodeshareStatus bool

func (s CodeshareStatus) Matches(f MergedFlight) bool {
	return f.Codeshare == bool(s)
}

// AircraftType matches flights listing the aircraft type
type AircraftType string

func (t AircraftType) Matches(f MergedFlight) bool {
	return slices.Contains(f.Aircraft, string(t))
}

func BySourceAirportName(name string) Predicate[MergedFlight] {
	return SourceAirportName(name)
}

func ByDestinationAirportName(name string) Predicate[MergedFlight] {
	return DestinationAirportName(name)
}

func ByAirlineName(name string) Predicate[MergedFlight] {
	return AirlineName(name)
}

func ByCodeshareStatus(codeshare bool) Predicate[MergedFlight] {
	return CodeshareStatus(codeshare)
}

func ByAircraftType(aircraft string) Predicate[MergedFlight] {
	return AircraftType(aircraft)
}

// City matches airports located in the city
type City string

func (c City) Matches(a Airport) bool {
	return a.City == string(c)
}

// NameContaining matches airports whose name contains the term, ignoring case
type NameContaining string

func (n NameContaining) Matches(a Airport) bool {
	return strings.Contains(strings.ToLower(a.Name), string(n))
}

func ByCity(city string) Predicate[Airport] {
	return City(city)
}

// ByNameContaining trims and lowercases the term once up front
func ByNameContaining(term string) Predicate[Airport] {
	return NameContaining(strings.ToLower(strings.TrimSpace(term)))
}

type allOf[T any] []Predicate[T]

func (ps allOf[T]) Matches(item T) bool {
	for _, p := range ps {
		if !p.Matches(item) {
			return false
		}
	}
	return true
}

// All matches items accepted by every predicate. With no predicates it
// matches everything.
func All[T any](predicates ...Predicate[T]) Predicate[T] {
	return allOf[T](predicates)
}
