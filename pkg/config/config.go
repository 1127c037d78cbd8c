package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/inventory-tracker/pkg/database"
)

// Config holds the service configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTPPort        string
	RequestTimeout  time.Duration
	AllowedOrigins  []string
	AuthRequired    bool
	JWTSecret       string
	KafkaBrokers    []string
	TracingEnabled  bool
	JaegerEndpoint  string
	MaxUploadMemory int64

	Database database.Config
}

// IsDevelopment reports whether pretty logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads .env files (when present) and then the environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "inventory-service"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getEnv("HTTP_PORT", "5000"),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		AllowedOrigins:  getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AuthRequired:    getBool("AUTH_REQUIRED", false),
		JWTSecret:       getEnv("JWT_SECRET", "change-me-in-production"),
		KafkaBrokers:    getList("KAFKA_BROKERS", nil),
		TracingEnabled:  getBool("TRACING_ENABLED", false),
		JaegerEndpoint:  getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		MaxUploadMemory: int64(getInt("MAX_UPLOAD_MEMORY_MB", 32)) << 20,
		Database: database.Config{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", database.DriverSQLite)),
			Path:     getEnv("DB_PATH", "inventory.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "inventorydb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
