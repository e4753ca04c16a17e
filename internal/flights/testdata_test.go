package flights

var (
	brisbane = Airport{ID: 3320, Name: "Brisbane International Airport", City: "Brisbane", Country: "Australia", IATA: "BNE", Latitude: -27.3841991424561, Longitude: 153.117004394531, Altitude: 13, Timezone: 10}
	perth    = Airport{ID: 3351, Name: "Perth International Airport", City: "Perth", Country: "Australia", IATA: "PER", Latitude: -31.940299987793, Longitude: 115.967002868652, Altitude: 67, Timezone: 8}
	cairns   = Airport{ID: 3322, Name: "Cairns International Airport", City: "Cairns", Country: "Australia", IATA: "CNS", Latitude: -16.885799408, Longitude: 145.755004883, Altitude: 10, Timezone: 10}
	goldCst  = Airport{ID: 3321, Name: "Gold Coast Airport", City: "Coolangatta", Country: "Australia", IATA: "OOL", Latitude: -28.1644001007, Longitude: 153.505004883, Altitude: 21, Timezone: 10}
	wynyard  = Airport{ID: 6338, Name: "Wynyard Airport", City: "Burnie", Country: "Australia", IATA: "BWT", Latitude: -40.9989013671875, Longitude: 145.731002807617, Altitude: 62, Timezone: 10}
	launcstn = Airport{ID: 3337, Name: "Launceston Airport", City: "Launceston", Country: "Australia", IATA: "LST", Latitude: -41.54529953, Longitude: 147.214004517, Altitude: 562, Timezone: 10}
)

func testAirports() []Airport {
	return []Airport{brisbane, perth, cairns, goldCst, wynyard, launcstn}
}

func route(airline string, src, dst Airport, codeshare bool, aircraft ...string) Flight {
	return Flight{
		AirlineCode:          airline[:2],
		AirlineName:          airline,
		AirlineCountry:       "Australia",
		SourceAirport:        src.IATA,
		SourceAirportID:      src.ID,
		DestinationAirport:   dst.IATA,
		DestinationAirportID: dst.ID,
		Aircraft:             aircraft,
		Codeshare:            codeshare,
	}
}

// sampleMerged mirrors the two-flight fixture used across the query tests
func sampleMerged() []MergedFlight {
	src1, dst1, src2, dst2 := brisbane, perth, cairns, goldCst
	return []MergedFlight{
		{
			SourceAirport:      &src1,
			DestinationAirport: &dst1,
			Airline:            Airline{Code: "JQ", Name: "Jetstar Airways", Country: "Australia"},
			Aircraft:           []string{"Airbus A320-100"},
		},
		{
			SourceAirport:      &src2,
			DestinationAirport: &dst2,
			Airline:            Airline{Code: "JQ", Name: "Jetstar Airways", Country: "Australia"},
			Aircraft:           []string{"Airbus A320-100"},
		},
	}
}
