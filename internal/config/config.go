// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// AWS
	AWSRegion string
	S3Bucket  string

	// Database
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// Redis catalog cache
	RedisAddr       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	// SES
	SESSenderEmail string

	// Recommendation side effects
	WriteBackTimeout time.Duration

	// Policy overrides, zero means "use the engine default"
	PolicyDSRCollateral   float64
	PolicyDSRLease        float64
	PolicyIncomeMultiple  float64
	PolicyDebtServiceRate float64
	PolicyMaxLTV          float64

	// Application
	Stage    string
	LogLevel string
	Port     string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// AWS
		AWSRegion: getEnv("AWS_REGION", "ap-northeast-2"),
		S3Bucket:  getEnv("S3_BUCKET", "loan-catalog-dev"),

		// Database
		DBHost:     getEnv("DB_HOST", getEnv("LOAN_DB_HOST", "localhost")),
		DBPort:     getEnvInt("DB_PORT", getEnvInt("LOAN_DB_PORT", 5432)),
		DBName:     getEnv("DB_NAME", getEnv("LOAN_DB_NAME", "loan_recommendation")),
		DBUser:     getEnv("DB_USER", getEnv("LOAN_DB_USER", "postgres")),
		DBPassword: getEnv("DB_PASSWORD", getEnv("LOAN_DB_PASSWORD", "")),

		// Redis
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogCacheTTL: time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,

		// SES
		SESSenderEmail: getEnv("SES_SENDER_EMAIL", ""),

		WriteBackTimeout: time.Duration(getEnvInt("WRITE_BACK_TIMEOUT_SECONDS", 5)) * time.Second,

		PolicyDSRCollateral:   getEnvFloat("POLICY_DSR_COLLATERAL", 0),
		PolicyDSRLease:        getEnvFloat("POLICY_DSR_LEASE", 0),
		PolicyIncomeMultiple:  getEnvFloat("POLICY_INCOME_MULTIPLE", 0),
		PolicyDebtServiceRate: getEnvFloat("POLICY_DEBT_SERVICE_RATE", 0),
		PolicyMaxLTV:          getEnvFloat("POLICY_MAX_LTV", 0),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "8080"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	sslMode := "require" // Use SSL for RDS
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + "/" + c.DBName + "?sslmode=" + sslMode
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat retrieves an environment variable as float64 or returns a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
