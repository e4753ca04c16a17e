package flights

import (
	"fmt"
	"slices"
	"sort"
)

// TopN is the length of the ranking carried by a StatsSummary
const TopN = 10

// FlightCountStats summarizes pairs by number of flights. It sorts the
// caller's slice in place, busiest first; ties keep their input order.
func FlightCountStats(pairs []AirportPair) (*StatsSummary, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("flight count stats: %w", ErrEmptyInput)
	}
	return summarize(pairs, func(p AirportPair) int { return p.NumberOfFlights }), nil
}

// TimeDifferenceStats summarizes pairs by timezone difference. Unlike
// FlightCountStats it sorts a copy and leaves pairs untouched.
func TimeDifferenceStats(pairs []AirportPair) (*StatsSummary, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("time difference stats: %w", ErrEmptyInput)
	}
	return summarize(slices.Clone(pairs), func(p AirportPair) int { return p.TimeDifference }), nil
}

// summarize sorts pairs descending by value and reads the stats off the ends
func summarize(pairs []AirportPair, value func(AirportPair) int) *StatsSummary {
	sort.SliceStable(pairs, func(i, j int) bool {
		return value(pairs[i]) > value(pairs[j])
	})

	sum := 0
	for _, p := range pairs {
		sum += value(p)
	}

	top := min(TopN, len(pairs))
	return &StatsSummary{
		Minimum: value(pairs[len(pairs)-1]),
		Maximum: value(pairs[0]),
		Average: float64(sum) / float64(len(pairs)),
		TopTen:  slices.Clone(pairs[:top]),
	}
}
