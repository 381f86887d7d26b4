package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all server configuration, loaded from environment variables
type Config struct {
	Port        string
	Environment string

	DatabaseURL string
	JWTSecret   []byte

	LogLevel string
	LogFile  string

	// Media storage: "local" (default) or "s3"
	MediaStore string
	UploadDir  string
	AWSRegion  string
	AWSBucket  string
	CDNBaseURL string

	CORSOrigin string

	OTelEnabled      bool
	OTelEndpoint     string
	OTelSamplingRate float64
}

// Load reads configuration from the environment. JWT_SECRET is the only
// required variable; everything else has a development-friendly default.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	samplingRate, err := strconv.ParseFloat(getEnvOrDefault("OTEL_SAMPLING_RATE", "1.0"), 64)
	if err != nil {
		samplingRate = 1.0
	}

	return &Config{
		Port:        getEnvOrDefault("PORT", "8000"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(jwtSecret),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:  getEnvOrDefault("LOG_FILE", "server.log"),

		MediaStore: getEnvOrDefault("MEDIA_STORE", "local"),
		UploadDir:  getEnvOrDefault("UPLOAD_DIR", "uploads"),
		AWSRegion:  getEnvOrDefault("AWS_REGION", "af-south-1"),
		AWSBucket:  os.Getenv("AWS_BUCKET"),
		CDNBaseURL: os.Getenv("CDN_BASE_URL"),

		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "*"),

		OTelEnabled:      os.Getenv("OTEL_ENABLED") == "true",
		OTelEndpoint:     getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		OTelSamplingRate: samplingRate,
	}, nil
}

// IsDevelopment reports whether we're running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
