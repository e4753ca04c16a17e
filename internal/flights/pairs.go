package flights

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// routeKey is an unordered pair of airport names
type routeKey struct {
	lo, hi string
}

func newRouteKey(a, b string) routeKey {
	if b < a {
		a, b = b, a
	}
	return routeKey{lo: a, hi: b}
}

// countRoutes counts flights per unordered (source name, destination name).
// A lookup gives the same number as rescanning every flight for a match in
// either direction.
func countRoutes(merged []MergedFlight) map[routeKey]int {
	counts := make(map[routeKey]int)
	for _, f := range merged {
		if f.SourceAirport == nil || f.DestinationAirport == nil {
			continue
		}
		counts[newRouteKey(f.SourceAirport.Name, f.DestinationAirport.Name)]++
	}
	return counts
}

// dedupKey sorts the two ids as strings, so 10 sorts before 9
func dedupKey(a, b int) string {
	ids := []string{strconv.Itoa(a), strconv.Itoa(b)}
	sort.Strings(ids)
	return strings.Join(ids, "-")
}

func timeDifference(a, b *Airport) int {
	diff := a.Timezone - b.Timezone
	if diff < 0 {
		return -diff
	}
	return diff
}

// EnumeratePairs pairs the source airport of each flight with the destination
// airport of every later flight, keeping the first occurrence of each
// unordered airport pair. Flight counts are taken by airport name in either
// direction, so distinct airports sharing a name pool their flights.
func EnumeratePairs(merged []MergedFlight) []AirportPair {
	counts := countRoutes(merged)
	seen := make(map[string]struct{})

	pairs := make([]AirportPair, 0)
	for i := range merged {
		airport1 := merged[i].SourceAirport
		if airport1 == nil {
			continue
		}

		for j := i + 1; j < len(merged); j++ {
			airport2 := merged[j].DestinationAirport
			if airport2 == nil || airport1.ID == airport2.ID {
				continue
			}

			key := dedupKey(airport1.ID, airport2.ID)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			pairs = append(pairs, AirportPair{
				ID:              fmt.Sprintf("%d-%d", airport1.ID, airport2.ID),
				Airport1:        AirportRef{Name: airport1.Name, IATA: airport1.IATA, ID: airport1.ID},
				Airport2:        AirportRef{Name: airport2.Name, IATA: airport2.IATA, ID: airport2.ID},
				NumberOfFlights: counts[newRouteKey(airport1.Name, airport2.Name)],
				TimeDifference:  timeDifference(airport1, airport2),
			})
		}
	}

	observed := pairs[:0]
	for _, p := range pairs {
		if p.NumberOfFlights >= 1 {
			observed = append(observed, p)
		}
	}
	return observed
}

// FlightsBetween returns the flights between two named airports in either direction
func FlightsBetween(merged []MergedFlight, airport1, airport2 string) []MergedFlight {
	out := make([]MergedFlight, 0)
	for _, f := range merged {
		if f.SourceAirport == nil || f.DestinationAirport == nil {
			continue
		}
		src, dst := f.SourceAirport.Name, f.DestinationAirport.Name
		if (src == airport1 && dst == airport2) || (src == airport2 && dst == airport1) {
			out = append(out, f)
		}
	}
	return out
}
