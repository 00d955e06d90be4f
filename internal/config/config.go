package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses token lifetimes
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Types reflect how the values are used: strings
// for identifiers and secrets, durations for token lifetimes, int64 for the
// upload size ceiling in bytes.
type Config struct {
	Env           string        // application environment ("development", "production")
	Port          string        // HTTP port to listen on
	DBUser        string        // database username
	DBPass        string        // database password (optional)
	DBHost        string        // database host address
	DBPort        string        // database port number
	DBName        string        // database name
	JWTSecret     string        // secret used to sign JWTs
	JWTExpiresIn  time.Duration // lifetime of issued access tokens
	BcryptCost    int           // bcrypt cost for password hashing
	MaxUploadSize int64         // upload size ceiling in bytes (exclusive)
	UploadDir     string        // directory where uploaded files are stored
}

// Load reads configuration from environment variables and returns a Config.
// Database credentials and the JWT secret are required; everything else
// falls back to a sensible default.
func Load() Config {
	return Config{
		Env:           envStr("APP_ENV", "development"),
		Port:          envStr("APP_PORT", "5000"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresIn:  envDur("JWT_EXPIRES_IN", 24*time.Hour),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		MaxUploadSize: envInt64("MAX_FILE_SIZE", 5242880), // 5MB
		UploadDir:     envStr("UPLOAD_DIR", "uploads"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
