// Package config resolves runtime settings from .env, the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/abhisek/lingo/internal/backend"
	"github.com/abhisek/lingo/internal/store"
)

// Environment variables read by Load.
const (
	EnvBackendURL = "LINGO_BACKEND_URL"
	EnvDB         = "LINGO_DB"
	EnvLog        = "LINGO_LOG"
	EnvNoEvents   = "LINGO_NO_EVENTS"
)

// Config holds all runtime settings.
type Config struct {
	// BackendURL is the backend origin. Default: http://localhost:8000.
	BackendURL string

	// DBPath is the SQLite request-event log.
	// Default: $XDG_DATA_HOME/lingo/lingo.db.
	DBPath string

	// LogPath receives the diagnostic log while the TUI runs.
	// Default: $XDG_DATA_HOME/lingo/lingo.log.
	LogPath string

	// RecordEvents enables the request-event store.
	RecordEvents bool
}

// Overrides are flag values; empty fields leave the loaded value in place.
type Overrides struct {
	BackendURL string
	DBPath     string
	LogPath    string
}

// Default returns a Config with default paths resolved.
func Default() (Config, error) {
	dir, err := store.DataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		BackendURL:   backend.DefaultBaseURL,
		DBPath:       filepath.Join(dir, "lingo.db"),
		LogPath:      filepath.Join(dir, "lingo.log"),
		RecordEvents: true,
	}, nil
}

// Load builds a Config in priority order: flag overrides, then LINGO_*
// environment variables (including those from a .env file in the working
// directory), then defaults.
func Load(o Overrides) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv(EnvNoEvents); v != "" && v != "0" && v != "false" {
		cfg.RecordEvents = false
	}

	if o.BackendURL != "" {
		cfg.BackendURL = o.BackendURL
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.LogPath != "" {
		cfg.LogPath = o.LogPath
	}

	return cfg, cfg.Validate()
}

// Validate checks that the backend URL is absolute.
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL %q must use http or https", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", c.BackendURL)
	}
	return nil
}
