package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yegors/airpairs/internal/config"
)

const (
	testAirports = `[
  {"id": 3320, "name": "Brisbane International Airport", "city": "Brisbane", "country": "Australia", "iata": "BNE", "timezone": 10},
  {"id": 3351, "name": "Perth International Airport", "city": "Perth", "country": "Australia", "iata": "PER", "timezone": 8}
]`
	testFlights = `[
  {"airline": "JQ", "airline_name": "Jetstar Airways", "source_airport_id": 3320, "destination_airport_id": 3351, "aircraft": ["Airbus A320-100"], "codeshare": false},
  {"airline": "QF", "airline_name": "Qantas", "source_airport_id": 3320, "destination_airport_id": 3351, "aircraft": ["Boeing 737"], "codeshare": true}
]`
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunImportThenReport(t *testing.T) {
	dir := t.TempDir()
	airports := writeFile(t, dir, "airports.json", testAirports)
	flightsPath := writeFile(t, dir, "flights.json", testFlights)
	cfgPath := writeFile(t, dir, "config.toml", fmt.Sprintf(`
[logging]
level = "error"

[data]
source = "sqlite"
sqlite_path = %q
`, filepath.Join(dir, "airpairs.db")))

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfgPath, "import", airports, flightsPath}, &stdout, &stderr); err != nil {
		t.Fatalf("import: %v (stderr: %s)", err, stderr.String())
	}

	stdout.Reset()
	if err := run([]string{"-config", cfgPath, "report"}, &stdout, &stderr); err != nil {
		t.Fatalf("report: %v (stderr: %s)", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Dataset (sqlite): 2 airports, 2 flights, 1 airport pairs") {
		t.Errorf("report output:\n%s", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tests := [][]string{
		{},
		{"fly"},
		{"import", "only-one.json"},
	}
	for _, args := range tests {
		if err := run(args, &stdout, &stderr); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	cfg := config.Default().Server
	cfg.WriteTimeoutSeconds = 45

	server := newHTTPServer(cfg, http.NotFoundHandler())
	if server.ReadTimeout != 10*time.Second || server.ReadHeaderTimeout != 5*time.Second || server.WriteTimeout != 45*time.Second {
		t.Errorf("timeouts: read %v, read header %v, write %v",
			server.ReadTimeout, server.ReadHeaderTimeout, server.WriteTimeout)
	}
}
