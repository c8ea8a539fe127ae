package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses token and cache lifetimes
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The configuration is loaded exactly once at
// startup and passed explicitly to the components that need it; nothing
// reads the environment again afterwards.
type Config struct {
	Port       string        // HTTP port to listen on
	DBUser     string        // database username
	DBPass     string        // database password (optional)
	DBHost     string        // database host address
	DBPort     string        // database port number
	DBName     string        // database name
	JWTSecret  string        // secret used to sign session tokens
	JWTExpires time.Duration // session token lifetime
	BcryptCost int           // bcrypt cost for password hashing
	CacheTTL   time.Duration // lifetime of cached dashboard responses
	RabbitURL  string        // AMQP broker URL; empty disables event publishing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  JWT_SECRET in
// particular has no fallback: the server refuses to start without it.
func Load() Config {
	return Config{
		Port:       getenv("PORT", "3000"),
		DBUser:     must("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     must("DB_HOST"),
		DBPort:     must("DB_PORT"),
		DBName:     must("DB_NAME"),
		JWTSecret:  must("JWT_SECRET"),
		JWTExpires: mustDur("JWT_EXPIRES", "168h"),
		BcryptCost: mustInt("BCRYPT_COST", "10"),
		CacheTTL:   mustDur("CACHE_TTL", "30s"),
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when the
// variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mustInt reads an optional integer variable, falling back to def.  An
// unparseable value is a configuration mistake and aborts startup.
func mustInt(key, def string) int {
	s := getenv(key, def)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// mustDur reads an optional duration variable (Go syntax, e.g. "168h"),
// falling back to def.  An unparseable value aborts startup.
func mustDur(key, def string) time.Duration {
	s := getenv(key, def)
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, s)
	}
	return d
}
