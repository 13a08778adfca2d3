package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// devSessionSecret signs sessions when SESSION_SECRET is unset outside
// production.
const devSessionSecret = "fallback-secret-key-for-dev-only"

// ErrMissingSessionSecret is returned by Load in production when
// SESSION_SECRET is not set.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set in production")

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Sessions
	SessionSecret     string
	SessionExpiresIn  time.Duration
	SessionCookieName string

	// Password hashing (argon2id)
	Argon2MemoryKiB uint32
	Argon2Time      uint32
	Argon2Threads   uint8
}

// IsProduction reports whether the server runs with production settings,
// which among other things marks the session cookie Secure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		// Sessions
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "auth_session"),
	}

	if config.SessionSecret == "" {
		if config.IsProduction() {
			return nil, ErrMissingSessionSecret
		}
		log.Println("Warning: SESSION_SECRET not set, using the development secret")
		config.SessionSecret = devSessionSecret
	}

	expStr := getEnv("SESSION_EXPIRES_IN", "720h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil || expDur <= 0 {
		log.Printf("Warning: invalid SESSION_EXPIRES_IN value '%s', falling back to 720h\n", expStr)
		expDur = 30 * 24 * time.Hour
	}
	config.SessionExpiresIn = expDur

	config.Argon2MemoryKiB = uint32(getEnvUint("ARGON2_MEMORY_KIB", 19*1024, 32))
	config.Argon2Time = uint32(getEnvUint("ARGON2_TIME", 2, 32))
	config.Argon2Threads = uint8(getEnvUint("ARGON2_THREADS", 1, 8))

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvUint parses a positive integer environment variable, falling back to
// defaultValue when it is unset, malformed or zero.
func getEnvUint(key string, defaultValue uint64, bits int) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil || v == 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
