package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// HTTP metrics/health server (for long-running invocations)
	HTTPEnabled bool

	// Benchmark parameters
	Message           string
	WarmupIterations  int
	MeasuredIteration int
	RequestDelay      time.Duration
	ChainSelector     string // "ethereum", "solana" or "both"

	// Services to benchmark, in ranking-tie order
	Services []string

	// Local provider simulation
	LocalSimDelay time.Duration

	// Verification cache
	VerifyCacheEnabled bool
	VerifyCacheSize    int64

	// Storage
	StorageMode  string // "postgres" or "console"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort:    getEnvOrDefault("HTTP_PORT", "8080"),
		HTTPEnabled: getBoolOrDefault("HTTP_ENABLED", false),

		// Benchmark defaults
		Message:           getEnvOrDefault("BENCH_MESSAGE", "signbench latency probe"),
		WarmupIterations:  getIntOrDefault("BENCH_WARMUP_ITERATIONS", 2),
		MeasuredIteration: getIntOrDefault("BENCH_MEASURED_ITERATIONS", 10),
		RequestDelay:      getDurationOrDefault("BENCH_REQUEST_DELAY", 500*time.Millisecond),
		ChainSelector:     getEnvOrDefault("BENCH_CHAINS", "both"),

		Services: getListOrDefault("BENCH_SERVICES", []string{"local"}),

		LocalSimDelay: getDurationOrDefault("LOCAL_SIM_DELAY", 0),

		// Verification cache defaults
		VerifyCacheEnabled: getBoolOrDefault("VERIFY_CACHE_ENABLED", true),
		VerifyCacheSize:    int64(getIntOrDefault("VERIFY_CACHE_SIZE", 10_000)),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "console"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "signbench"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "signbench123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "signbench"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.Message == "" {
		return fmt.Errorf("BENCH_MESSAGE cannot be empty")
	}

	if c.WarmupIterations < 0 {
		return fmt.Errorf("BENCH_WARMUP_ITERATIONS must be >= 0, got %d", c.WarmupIterations)
	}

	if c.MeasuredIteration <= 0 {
		return fmt.Errorf("BENCH_MEASURED_ITERATIONS must be > 0, got %d", c.MeasuredIteration)
	}

	if c.RequestDelay < 0 {
		return fmt.Errorf("BENCH_REQUEST_DELAY must be >= 0, got %s", c.RequestDelay)
	}

	if c.ChainSelector != "ethereum" && c.ChainSelector != "solana" && c.ChainSelector != "both" {
		return fmt.Errorf("BENCH_CHAINS must be 'ethereum', 'solana' or 'both', got %q", c.ChainSelector)
	}

	if len(c.Services) == 0 {
		return fmt.Errorf("BENCH_SERVICES cannot be empty")
	}

	if c.StorageMode != "postgres" && c.StorageMode != "console" {
		return fmt.Errorf("STORAGE_MODE must be 'postgres' or 'console', got %q", c.StorageMode)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			list = append(list, p)
		}
	}

	if len(list) == 0 {
		return defaultValue
	}

	return list
}
