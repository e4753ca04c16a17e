package flights

// Airport is an immutable reference record, looked up by ID
type Airport struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      string  `json:"iata"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  int     `json:"altitude"`
	Timezone  int     `json:"timezone"` // hours offset from UTC

	LastModified string `json:"last_modified,omitempty"`
}

// Flight is a raw route record as it appears in the flights dataset
type Flight struct {
	AirlineCode          string   `json:"airline"`
	AirlineName          string   `json:"airline_name"`
	AirlineCountry       string   `json:"airline_country"`
	SourceAirport        string   `json:"source_airport"`
	SourceAirportID      int      `json:"source_airport_id"`
	DestinationAirport   string   `json:"destination_airport"`
	DestinationAirportID int      `json:"destination_airport_id"`
	Aircraft             []string `json:"aircraft"`
	Codeshare            bool     `json:"codeshare"`
}

// Airline is the normalized airline sub-record of a merged flight
type Airline struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// MergedFlight is a flight with its airports embedded. SourceAirport and
// DestinationAirport are nil when the id had no match in the airport data.
type MergedFlight struct {
	SourceAirport      *Airport `json:"source_airport"`
	DestinationAirport *Airport `json:"destination_airport"`
	Airline            Airline  `json:"airline"`
	Aircraft           []string `json:"aircraft"`
	Codeshare          bool     `json:"codeshare"`

	LastModified string `json:"last_modified,omitempty"`
}

// AirportRef is the short airport label carried by an AirportPair
type AirportRef struct {
	Name string `json:"Name"`
	IATA string `json:"IATA"`
	ID   int    `json:"ID"`
}

// AirportPair is an unordered pair of distinct airports with at least one
// observed flight between them. ID and the Airport1/Airport2 order follow
// the order in which the airports were first encountered.
type AirportPair struct {
	ID              string     `json:"ID"`
	Airport1        AirportRef `json:"Airport1"`
	Airport2        AirportRef `json:"Airport2"`
	NumberOfFlights int        `json:"Number_of_Flights"`
	TimeDifference  int        `json:"Time_Difference"`
}

// StatsSummary holds descriptive statistics over a set of airport pairs
type StatsSummary struct {
	Minimum int           `json:"minimum"`
	Maximum int           `json:"maximum"`
	Average float64       `json:"average"`
	TopTen  []AirportPair `json:"topTen"`
}
