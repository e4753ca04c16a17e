package flights

import "math"

const (
	earthRadiusMeters = 6371000.0
	metersPerNM       = 1852.0
)

// haversine returns the great-circle distance in meters between two points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180.0

	lat1Rad := lat1 * rad
	lat2Rad := lat2 * rad
	dlat := (lat2 - lat1) * rad
	dlon := (lon2 - lon1) * rad

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(dlon/2), 2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceNM is the great-circle distance between two airports in nautical miles
func DistanceNM(a, b Airport) float64 {
	return haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude) / metersPerNM
}

// PairDistanceNM looks both airports of a pair up by id and returns the
// distance between them. ok is false when either airport is unknown.
func PairDistanceNM(airports []Airport, p AirportPair) (nm float64, ok bool) {
	a, err := FindAirport(airports, p.Airport1.ID)
	if err != nil {
		return 0, false
	}
	b, err := FindAirport(airports, p.Airport2.ID)
	if err != nil {
		return 0, false
	}
	return DistanceNM(a, b), true
}
