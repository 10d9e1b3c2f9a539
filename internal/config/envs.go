package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	GridFile   string // Path of the grid file read by the CLI; empty means stdin
	Heuristic  string // Heuristic name: "manhattan" or "zero"
	VizAddr    string // Listen address of the visualiser
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	VizMaxSide int    // Largest width or height the visualiser will generate
}

// Load reads an optional .env file and the environment.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		GridFile:   getEnvWithDefault("GRIDPATH_FILE", ""),
		Heuristic:  getEnvWithDefault("GRIDPATH_HEURISTIC", "manhattan"),
		VizAddr:    getEnvWithDefault("VIZ_ADDR", ":8080"),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		VizMaxSide: mustGetEnvAsIntWithDefault("VIZ_MAX_SIDE", 200),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnvAsIntWithDefault parses an integer variable, falling back to defaultValue when unset.
// A value that is set but not an integer is fatal.
func mustGetEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
