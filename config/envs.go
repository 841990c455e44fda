package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // Address (host:port) of the Redis server holding live runs
	RedisPassword   string // Password for Redis, empty when auth is disabled
	RunTTLSeconds   int    // Seconds an idle run is kept in Redis
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	MazeDefaultRows int    // Rows of a maze started without dimensions
	MazeDefaultCols int    // Columns of a maze started without dimensions
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load reads the configuration from the environment, after loading a .env
// file when one is present, and stores it in Envs.
// Missing required variables are fatal.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	Envs = Config{
		HostIP:          mustGetEnv("HOST_IP"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		RunTTLSeconds:   getEnvAsIntWithDefault("RUN_TTL_SECONDS", 3600),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		MazeDefaultRows: getEnvAsIntWithDefault("MAZE_DEFAULT_ROWS", 30),
		MazeDefaultCols: getEnvAsIntWithDefault("MAZE_DEFAULT_COLS", 40),
	}
	return Envs
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

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}
