package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime defaults for the CLI and API. Flags always win
// over environment values; the environment wins over the built-ins.
type Config struct {
	Analysis AnalysisConfig
	Server   ServerConfig
}

// AnalysisConfig holds default analysis parameters
type AnalysisConfig struct {
	Factor         float64
	MinClusterSize int
	WithProfile    bool
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Listen string
}

// Load reads configuration from the environment, first merging a local
// .env file when one exists. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Analysis: AnalysisConfig{
			Factor:         getEnvFloatOrDefault("GAPSCAN_FACTOR", 1.5),
			MinClusterSize: getEnvIntOrDefault("GAPSCAN_MIN_CLUSTER_SIZE", 2),
			WithProfile:    getEnvBoolOrDefault("GAPSCAN_PROFILE", false),
		},
		Server: ServerConfig{
			Listen: getEnvOrDefault("GAPSCAN_LISTEN", ":8080"),
		},
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
