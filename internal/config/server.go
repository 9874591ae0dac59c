package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Server holds API settings read from the environment.
type Server struct {
	Port      string
	Env       string
	AssetDir  string
	LedgerTTL time.Duration
	LogLevel  string
}

func (s Server) Production() bool { return s.Env == "production" }

// LoadServer reads API_PORT, API_ENV, ASSET_DIR, LEDGER_TTL and LOG_LEVEL.
func LoadServer() (Server, error) {
	s := Server{
		Port:      envOr("API_PORT", "8080"),
		Env:       os.Getenv("API_ENV"),
		AssetDir:  os.Getenv("ASSET_DIR"),
		LedgerTTL: time.Hour,
		LogLevel:  envOr("LOG_LEVEL", "info"),
	}
	if s.AssetDir == "" {
		s.AssetDir = filepath.Join("examples", "assets")
	}
	if abs, err := filepath.Abs(s.AssetDir); err == nil {
		s.AssetDir = abs
	}
	if v := os.Getenv("LEDGER_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("LEDGER_TTL: %w", err)
		}
		if ttl <= 0 {
			return Server{}, fmt.Errorf("LEDGER_TTL must be > 0, got %s", ttl)
		}
		s.LedgerTTL = ttl
	}
	return s, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
