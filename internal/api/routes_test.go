package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/yegors/airpairs/internal/config"
	"github.com/yegors/airpairs/internal/dataset"
	"github.com/yegors/airpairs/internal/flights"
	"github.com/yegors/airpairs/pkg/logger"
)

func newTestServer(t *testing.T, airports []flights.Airport, raw []flights.Flight, cfg config.ServerConfig) *httptest.Server {
	t.Helper()
	ds, err := dataset.New("json", airports, raw)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	srv := httptest.NewServer(NewRouter(ds, cfg, logger.NewNop()).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func sampleServer(t *testing.T) *httptest.Server {
	airports := []flights.Airport{
		{ID: 3351, Name: "Perth International Airport", City: "Perth", IATA: "PER", Timezone: 8},
		{ID: 3320, Name: "Brisbane International Airport", City: "Brisbane", IATA: "BNE", Timezone: 10},
		{ID: 3322, Name: "Cairns International Airport", City: "Cairns", IATA: "CNS", Timezone: 10},
	}
	raw := []flights.Flight{
		{AirlineCode: "JQ", AirlineName: "Jetstar Airways", SourceAirportID: 3320, DestinationAirportID: 3351, Aircraft: []string{"Airbus A320-100"}},
		{AirlineCode: "VA", AirlineName: "Virgin Australia", SourceAirportID: 3320, DestinationAirportID: 3351, Aircraft: []string{"Boeing 737"}, Codeshare: true},
		{AirlineCode: "VA", AirlineName: "Virgin Australia", SourceAirportID: 3322, DestinationAirportID: 3320, Aircraft: []string{"Boeing 717"}},
	}
	return newTestServer(t, airports, raw, config.ServerConfig{})
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("GET %s: content type %q", url, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode: %v", url, err)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := sampleServer(t)
	var body map[string]any
	getJSON(t, srv.URL+"/api/v1/health", http.StatusOK, &body)
	if body["status"] != "ok" || body["flights"] != float64(3) {
		t.Errorf("health = %+v", body)
	}
}

func TestAirports(t *testing.T) {
	srv := sampleServer(t)

	var list ListResponse[flights.Airport]
	getJSON(t, srv.URL+"/api/v1/airports", http.StatusOK, &list)
	if list.Count != 3 || list.Items[0].IATA != "BNE" || list.Items[2].IATA != "PER" {
		t.Errorf("airports = %+v", list)
	}

	var airport flights.Airport
	getJSON(t, srv.URL+"/api/v1/airports/3322", http.StatusOK, &airport)
	if airport.Name != "Cairns International Airport" {
		t.Errorf("airport = %+v", airport)
	}

	getJSON(t, srv.URL+"/api/v1/airports/1", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/v1/airports/abc", http.StatusBadRequest, nil)

	getJSON(t, srv.URL+"/api/v1/airports/search?city=any&q=CAIRNS", http.StatusOK, &list)
	if list.Count != 1 || list.Items[0].ID != 3322 {
		t.Errorf("search = %+v", list)
	}
}

func TestFlights(t *testing.T) {
	srv := sampleServer(t)

	var list ListResponse[flights.MergedFlight]
	getJSON(t, srv.URL+"/api/v1/flights?source=3320&airline=Virgin%20Australia", http.StatusOK, &list)
	if list.Count != 1 || !list.Items[0].Codeshare {
		t.Errorf("flights = %+v", list)
	}

	getJSON(t, srv.URL+"/api/v1/flights?source=any&destination=any", http.StatusOK, &list)
	if list.Count != 3 {
		t.Errorf("unfiltered flights = %d", list.Count)
	}

	getJSON(t, srv.URL+"/api/v1/flights?source=BNE", http.StatusBadRequest, nil)
}

func TestQueryFlights(t *testing.T) {
	srv := sampleServer(t)

	var list ListResponse[flights.MergedFlight]
	getJSON(t, srv.URL+"/api/v1/flights/query?by=source_airport&value=Brisbane%20International%20Airport", http.StatusOK, &list)
	if list.Count != 2 || list.Items[0].LastModified == "" || list.Items[0].LastModified != list.Items[1].LastModified {
		t.Errorf("query = %+v", list)
	}

	getJSON(t, srv.URL+"/api/v1/flights/query?by=codeshare&value=true", http.StatusOK, &list)
	if list.Count != 1 {
		t.Errorf("codeshare query = %+v", list)
	}

	getJSON(t, srv.URL+"/api/v1/flights/query?by=codeshare&value=maybe", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/v1/flights/query?by=tail&value=x", http.StatusBadRequest, nil)
}

func TestFacets(t *testing.T) {
	srv := sampleServer(t)
	var facets dataset.Facets
	getJSON(t, srv.URL+"/api/v1/facets", http.StatusOK, &facets)
	if len(facets.Airlines) != 2 || len(facets.Aircraft) != 3 || facets.Cities[0] != "Brisbane" {
		t.Errorf("facets = %+v", facets)
	}
}

func TestPairsAndStats(t *testing.T) {
	srv := sampleServer(t)

	var pairs ListResponse[flights.AirportPair]
	getJSON(t, srv.URL+"/api/v1/pairs", http.StatusOK, &pairs)
	if pairs.Count != 1 || pairs.Items[0].ID != "3320-3351" || pairs.Items[0].NumberOfFlights != 2 {
		t.Errorf("pairs = %+v", pairs)
	}

	var stats flights.StatsSummary
	getJSON(t, srv.URL+"/api/v1/stats/flights", http.StatusOK, &stats)
	if stats.Maximum != 2 || len(stats.TopTen) != 1 {
		t.Errorf("flight stats = %+v", stats)
	}

	getJSON(t, srv.URL+"/api/v1/stats/time-difference", http.StatusOK, &stats)
	if stats.Maximum != 2 || stats.Average != 2 {
		t.Errorf("time stats = %+v", stats)
	}
}

func TestStatsWithoutPairs(t *testing.T) {
	srv := newTestServer(t, []flights.Airport{}, []flights.Flight{}, config.ServerConfig{})
	getJSON(t, srv.URL+"/api/v1/stats/flights", http.StatusUnprocessableEntity, nil)
}

func TestCORSAndStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, []flights.Airport{}, []flights.Flight{}, config.ServerConfig{
		StaticFilesDir:     dir,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	})

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/pairs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent || resp.Header.Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("preflight status %d, headers %v", resp.StatusCode, resp.Header)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("disallowed origin got CORS headers")
	}

	resp, err = http.Get(srv.URL + "/index.html")
	if err != nil {
		t.Fatalf("GET index: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("static status %d", resp.StatusCode)
	}
}
