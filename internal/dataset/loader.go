package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yegors/airpairs/internal/config"
	"github.com/yegors/airpairs/internal/flights"
	"github.com/yegors/airpairs/internal/storage/sqlite"
	"github.com/yegors/airpairs/pkg/logger"
)

// ReadAirports decodes a JSON array of airports
func ReadAirports(r io.Reader) ([]flights.Airport, error) {
	var airports []flights.Airport
	if err := json.NewDecoder(r).Decode(&airports); err != nil {
		return nil, err
	}
	return airports, nil
}

// ReadFlights decodes a JSON array of flights
func ReadFlights(r io.Reader) ([]flights.Flight, error) {
	var raw []flights.Flight
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func readJSONFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("error processing JSON file %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("error processing JSON file %s: %w", path, err)
	}
	return out, nil
}

// LoadJSONFiles reads both collections from JSON files
func LoadJSONFiles(airportsPath, flightsPath string) ([]flights.Airport, []flights.Flight, error) {
	airports, err := readJSONFile(airportsPath, ReadAirports)
	if err != nil {
		return nil, nil, err
	}
	raw, err := readJSONFile(flightsPath, ReadFlights)
	if err != nil {
		return nil, nil, err
	}
	return airports, raw, nil
}

// Load reads the configured source and builds a Dataset from it
func Load(ctx context.Context, cfg config.DataConfig, log *logger.Logger) (*Dataset, error) {
	log = log.Named("dataset").WithDataset(cfg.Source)

	var (
		airports []flights.Airport
		raw      []flights.Flight
		err      error
	)

	switch cfg.Source {
	case config.SourceJSON:
		log.Debug("Loading JSON dataset",
			logger.String("airports_path", cfg.AirportsPath),
			logger.String("flights_path", cfg.FlightsPath))
		airports, raw, err = LoadJSONFiles(cfg.AirportsPath, cfg.FlightsPath)
	case config.SourceSQLite:
		log.Debug("Loading SQLite dataset", logger.String("path", cfg.SQLitePath))
		airports, raw, err = loadSQLite(ctx, cfg.SQLitePath, log)
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Source)
	}
	if err != nil {
		return nil, err
	}

	ds, err := New(cfg.Source, airports, raw)
	if err != nil {
		return nil, err
	}

	missing := 0
	for _, f := range ds.Merged {
		if f.SourceAirport == nil || f.DestinationAirport == nil {
			missing++
		}
	}
	if missing > 0 {
		log.Warn("Flights reference unknown airports", logger.Int("flights", missing))
	}

	log.Info("Dataset loaded",
		logger.Int("airports", len(ds.Airports)),
		logger.Int("flights", len(ds.Flights)))

	return ds, nil
}

// loadSQLite reads an existing database. Only Import creates one.
func loadSQLite(ctx context.Context, path string, log *logger.Logger) ([]flights.Airport, []flights.Flight, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("sqlite dataset %s: %w", path, err)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	return readStorage(ctx, db, log)
}

func readStorage(ctx context.Context, db *sql.DB, log *logger.Logger) ([]flights.Airport, []flights.Flight, error) {
	storage, err := sqlite.NewDatasetStorage(db, log)
	if err != nil {
		return nil, nil, err
	}

	airports, err := storage.GetAirports(ctx)
	if err != nil {
		return nil, nil, err
	}
	raw, err := storage.GetFlights(ctx)
	if err != nil {
		return nil, nil, err
	}
	return airports, raw, nil
}

// Import copies both collections into a SQLite database at path
func Import(ctx context.Context, path string, airports []flights.Airport, raw []flights.Flight, log *logger.Logger) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	storage, err := sqlite.NewDatasetStorage(db, log)
	if err != nil {
		return err
	}
	return storage.Replace(ctx, airports, raw)
}
