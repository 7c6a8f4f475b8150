package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHostIP      = "0.0.0.0"
	defaultRESTPort    = 8080
	defaultGinMode     = "release"
	defaultLogLevel    = "info"
	defaultMazeSize    = 30
	defaultMaxMazeSize = 200
	defaultJWTIssuer   = "frontier-maze"
	defaultJWTTTL      = time.Hour
)

// ErrMissingEnv is returned when a variable required by the server is unset.
var ErrMissingEnv = errors.New("environment variable is not set")

// Config holds the application's configuration values.
type Config struct {
	HostIP           string        // Host IP for the server
	RESTPort         int           // Port for the REST API
	GinMode          string        // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel         string        // Minimum log level (debug, info, warn, error)
	DefaultMazeSize  int           // Size used when a request does not name one
	MaxMazeSize      int           // Largest size the API will build
	JWTSecret        string        // Secret key for JWT signing
	JWTIssuer        string        // Issuer claim for JWTs
	JWTTTL           time.Duration // Lifetime of issued tokens
	ClientID         string        // Client allowed to request tokens
	ClientSecretHash string        // Bcrypt hash of the client's secret
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var errs []error
	cfg := Config{
		HostIP:           getEnvWithDefault("HOST_IP", defaultHostIP),
		RESTPort:         getEnvAsInt("REST_PORT", defaultRESTPort, &errs),
		GinMode:          getEnvWithDefault("GIN_MODE", defaultGinMode),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", defaultLogLevel),
		DefaultMazeSize:  getEnvAsInt("MAZE_DEFAULT_SIZE", defaultMazeSize, &errs),
		MaxMazeSize:      getEnvAsInt("MAZE_MAX_SIZE", defaultMaxMazeSize, &errs),
		JWTSecret:        getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:        getEnvWithDefault("JWT_ISSUER", defaultJWTIssuer),
		JWTTTL:           getEnvAsDuration("JWT_TTL", defaultJWTTTL, &errs),
		ClientID:         getEnvWithDefault("API_CLIENT_ID", ""),
		ClientSecretHash: getEnvWithDefault("API_CLIENT_SECRET_HASH", ""),
	}

	if cfg.DefaultMazeSize <= 0 {
		errs = append(errs, fmt.Errorf("MAZE_DEFAULT_SIZE must be positive, got %d", cfg.DefaultMazeSize))
	}
	if cfg.MaxMazeSize < cfg.DefaultMazeSize {
		errs = append(errs, fmt.Errorf("MAZE_MAX_SIZE (%d) is below MAZE_DEFAULT_SIZE (%d)", cfg.MaxMazeSize, cfg.DefaultMazeSize))
	}

	return cfg, errors.Join(errs...)
}

// ValidateServer reports the variables the HTTP server needs but which are unset.
func (c Config) ValidateServer() error {
	var errs []error
	for key, value := range map[string]string{
		"JWT_SECRET":             c.JWTSecret,
		"API_CLIENT_ID":          c.ClientID,
		"API_CLIENT_SECRET_HASH": c.ClientSecretHash,
	} {
		if value == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingEnv, key))
		}
	}
	return errors.Join(errs...)
}

// Addr returns the listen address of the REST API.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsInt retrieves the value of an environment variable as an integer,
// recording a parse failure in errs.
func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves the value of an environment variable as a duration.
func getEnvAsDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be a duration: %w", key, err))
		return defaultValue
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
