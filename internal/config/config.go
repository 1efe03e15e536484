package config

import (
	"os"
	"strconv"
)

// Config holds command configuration loaded from environment variables.
type Config struct {
	ArchivePath string // SQLite telemetry archive
	Seed        uint64
	Ticks       int
	Countries   int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ArchivePath: envOrDefault("ARCHIVE_PATH", "grandstrat.db"),
		Seed:        envUint("SEED", 42),
		Ticks:       envInt("TICKS", 100),
		Countries:   envInt("COUNTRIES", 12),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
