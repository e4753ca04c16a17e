package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Data sources
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// Config is the application configuration
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
}

// LoggingConfig configures the logger
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, console
}

// DataConfig selects where airports and flights are read from
type DataConfig struct {
	Source       string `toml:"source"` // "json" or "sqlite"
	AirportsPath string `toml:"airports_path"`
	FlightsPath  string `toml:"flights_path"`
	SQLitePath   string `toml:"sqlite_path"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	ListenAddr         string   `toml:"listen_addr"`
	StaticFilesDir     string   `toml:"static_files_dir"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	MaxConnections     int      `toml:"max_connections"`
	ReadTimeoutSeconds int      `toml:"read_timeout_seconds"`

	ReadHeaderTimeoutSeconds int `toml:"read_header_timeout_seconds"`
	WriteTimeoutSeconds      int `toml:"write_timeout_seconds"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Data: DataConfig{
			Source:       SourceJSON,
			AirportsPath: "A2_Airports.json",
			FlightsPath:  "A2_Flights.json",
			SQLitePath:   "airpairs.db",
		},
		Server: ServerConfig{
			ListenAddr:         ":8080",
			StaticFilesDir:     "web",
			MaxConnections:     64,
			ReadTimeoutSeconds: 10,

			ReadHeaderTimeoutSeconds: 5,
			WriteTimeoutSeconds:      30,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use
func (c *Config) Validate() error {
	var errs []error

	switch c.Data.Source {
	case SourceJSON:
		if c.Data.AirportsPath == "" || c.Data.FlightsPath == "" {
			errs = append(errs, errors.New("data.airports_path and data.flights_path are required for the json source"))
		}
	case SourceSQLite:
		if c.Data.SQLitePath == "" {
			errs = append(errs, errors.New("data.sqlite_path is required for the sqlite source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported data.source: %q", c.Data.Source))
	}

	if c.Server.MaxConnections < 1 {
		errs = append(errs, errors.New("server.max_connections must be positive"))
	}

	if c.Server.ReadTimeoutSeconds < 0 || c.Server.ReadHeaderTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
