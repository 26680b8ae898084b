package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	GridRows         int    // Rows of a new workspace grid
	GridCols         int    // Columns of a new workspace grid
	StepDelayMs      int    // Pause after each Checking step of a streamed search
	PathDelayMs      int    // Pause after each OnPath step of a streamed search
	SearchTimeoutSec int    // Upper bound on a single search
	IdleWorkspaceMin int    // Minutes after which an unused workspace is dropped
	RedisAddr        string // Redis address for the search lock; empty uses an in-process lock
	RedisPassword    string // Password for Redis
	LockTTLSec       int    // Expiry of a search lock left behind by a crashed replica
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		GridRows:         getEnvAsIntWithDefault("GRID_ROWS", 20),
		GridCols:         getEnvAsIntWithDefault("GRID_COLS", 20),
		StepDelayMs:      getEnvAsIntWithDefault("STEP_DELAY_MS", 20),
		PathDelayMs:      getEnvAsIntWithDefault("PATH_DELAY_MS", 30),
		SearchTimeoutSec: getEnvAsIntWithDefault("SEARCH_TIMEOUT_SEC", 120),
		IdleWorkspaceMin: getEnvAsIntWithDefault("IDLE_WORKSPACE_MIN", 60),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		LockTTLSec:       getEnvAsIntWithDefault("LOCK_TTL_SEC", 180),
		DBHost:           mustGetEnv("DB_HOST"),
		DBPort:           mustGetEnvAsInt("DB_PORT"),
		DBUser:           mustGetEnv("DB_USER"),
		DBPassword:       mustGetEnv("DB_PASS"),
		DBName:           mustGetEnv("DB_NAME"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        getEnvWithDefault("JWT_ISSUER", "vinom-pathfinder"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. A value that does
// not parse is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
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
