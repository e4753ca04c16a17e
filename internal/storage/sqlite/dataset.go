package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yegors/airpairs/internal/flights"
	"github.com/yegors/airpairs/pkg/logger"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	return db, nil
}

// DatasetStorage stores the airport and flight collections. Rows are read
// back in insertion order, which the merge and pair enumeration rely on.
type DatasetStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewDatasetStorage creates the storage and its tables
func NewDatasetStorage(db *sql.DB, log *logger.Logger) (*DatasetStorage, error) {
	storage := &DatasetStorage{
		db:     db,
		logger: log.Named("sqlite-dataset"),
	}

	if err := storage.initDB(); err != nil {
		storage.logger.Error("Failed to initialize dataset storage", logger.Error(err))
		return nil, err
	}

	return storage, nil
}

func (s *DatasetStorage) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS airports (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id INTEGER NOT NULL,
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			iata TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL DEFAULT 0,
			longitude REAL NOT NULL DEFAULT 0,
			altitude INTEGER NOT NULL DEFAULT 0,
			timezone INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create airports table: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS flights (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			airline TEXT NOT NULL DEFAULT '',
			airline_name TEXT NOT NULL DEFAULT '',
			airline_country TEXT NOT NULL DEFAULT '',
			source_airport TEXT NOT NULL DEFAULT '',
			source_airport_id INTEGER NOT NULL,
			destination_airport TEXT NOT NULL DEFAULT '',
			destination_airport_id INTEGER NOT NULL,
			aircraft TEXT NOT NULL DEFAULT '[]',
			codeshare INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create flights table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_airports_id ON airports(id)`,
		`CREATE INDEX IF NOT EXISTS idx_flights_source ON flights(source_airport_id)`,
		`CREATE INDEX IF NOT EXISTS idx_flights_destination ON flights(destination_airport_id)`,
	}
	for _, indexSQL := range indexes {
		if _, err = s.db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create dataset index: %w", err)
		}
	}

	return nil
}

// Replace swaps the stored collections for the given ones in one transaction
func (s *DatasetStorage) Replace(ctx context.Context, airports []flights.Airport, raw []flights.Flight) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"flights", "airports"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertAirports(ctx, tx, airports); err != nil {
		return err
	}
	if err := insertFlights(ctx, tx, raw); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}

	s.logger.Info("Dataset stored",
		logger.Int("airports", len(airports)),
		logger.Int("flights", len(raw)))
	return nil
}

func insertAirports(ctx context.Context, tx *sql.Tx, airports []flights.Airport) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO airports
		(id, name, city, country, iata, latitude, longitude, altitude, timezone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare airport insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports {
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.Name, a.City, a.Country, a.IATA,
			a.Latitude, a.Longitude, a.Altitude, a.Timezone,
		); err != nil {
			return fmt.Errorf("failed to insert airport %d: %w", a.ID, err)
		}
	}
	return nil
}

func insertFlights(ctx context.Context, tx *sql.Tx, raw []flights.Flight) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO flights
		(airline, airline_name, airline_country, source_airport, source_airport_id,
		 destination_airport, destination_airport_id, aircraft, codeshare)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare flight insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range raw {
		aircraft, err := json.Marshal(f.Aircraft)
		if err != nil {
			return fmt.Errorf("failed to encode aircraft for flight %d: %w", i, err)
		}

		codeshare := 0
		if f.Codeshare {
			codeshare = 1
		}

		if _, err := stmt.ExecContext(ctx,
			f.AirlineCode, f.AirlineName, f.AirlineCountry,
			f.SourceAirport, f.SourceAirportID,
			f.DestinationAirport, f.DestinationAirportID,
			string(aircraft), codeshare,
		); err != nil {
			return fmt.Errorf("failed to insert flight %d: %w", i, err)
		}
	}
	return nil
}

// GetAirports returns every stored airport in insertion order
func (s *DatasetStorage) GetAirports(ctx context.Context) ([]flights.Airport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, city, country, iata, latitude, longitude, altitude, timezone
		FROM airports
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	airports := make([]flights.Airport, 0)
	for rows.Next() {
		var a flights.Airport
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.Country, &a.IATA,
			&a.Latitude, &a.Longitude, &a.Altitude, &a.Timezone,
		); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read airports: %w", err)
	}

	return airports, nil
}

// GetFlights returns every stored flight in insertion order
func (s *DatasetStorage) GetFlights(ctx context.Context) ([]flights.Flight, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT airline, airline_name, airline_country, source_airport, source_airport_id,
		destination_airport, destination_airport_id, aircraft, codeshare
		FROM flights
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	raw := make([]flights.Flight, 0)
	for rows.Next() {
		var (
			f         flights.Flight
			aircraft  string
			codeshare int
		)
		if err := rows.Scan(
			&f.AirlineCode, &f.AirlineName, &f.AirlineCountry,
			&f.SourceAirport, &f.SourceAirportID,
			&f.DestinationAirport, &f.DestinationAirportID,
			&aircraft, &codeshare,
		); err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}

		if err := json.Unmarshal([]byte(aircraft), &f.Aircraft); err != nil {
			return nil, fmt.Errorf("failed to decode aircraft list: %w", err)
		}
		f.Codeshare = codeshare != 0

		raw = append(raw, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flights: %w", err)
	}

	return raw, nil
}
