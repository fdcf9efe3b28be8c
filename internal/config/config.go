package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Token lifetimes are parsed from duration strings
// like "15m" or "7d" so they can be tuned without code changes.
type Config struct {
	Env              string        // application environment (e.g. "dev", "prod")
	Port             string        // HTTP port to listen on
	DBUser           string        // database username
	DBPass           string        // database password (optional)
	DBHost           string        // database host address
	DBPort           string        // database port number
	DBName           string        // database name
	JWTAccessSecret  string        // secret used to sign access tokens
	JWTRefreshSecret string        // secret used to sign refresh tokens
	AccessTTL        time.Duration // access token time-to-live
	RefreshTTL       time.Duration // refresh token time-to-live
	BcryptCost       int           // bcrypt cost for password hashing
	PruneInterval    time.Duration // how often expired sessions are purged
}

// Load reads configuration from environment variables. Required variables
// are enforced by must() and missing values cause the program to exit with a
// fatal log message.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),
		Port:             must("APP_PORT"),
		DBUser:           must("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"), // empty allowed
		DBHost:           must("DB_HOST"),
		DBPort:           must("DB_PORT"),
		DBName:           must("DB_NAME"),
		JWTAccessSecret:  must("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: must("JWT_REFRESH_SECRET"),
		AccessTTL:        ParseExpiry(envStr("JWT_ACCESS_EXPIRATION", "15m"), 15*time.Minute),
		RefreshTTL:       ParseExpiry(envStr("JWT_REFRESH_EXPIRATION", "7d"), 7*24*time.Hour),
		BcryptCost:       mustInt("BCRYPT_COST"),
		PruneInterval:    envDur("SESSION_PRUNE_INTERVAL", time.Hour),
	}
}

// ParseExpiry converts an expiration string with a day, hour or minute
// suffix ("7d", "24h", "15m") into a duration. Any unparseable value or
// unknown unit falls back to the given default. The leniency is deliberate:
// a typo in deployment config should degrade to the stock lifetime, not
// refuse to boot.
func ParseExpiry(s string, def time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return def
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return def
	}
	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * 24 * time.Hour
	case 'h':
		return time.Duration(n) * time.Hour
	case 'm':
		return time.Duration(n) * time.Minute
	}
	return def
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

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
