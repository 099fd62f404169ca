package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Database             DatabaseConfig
	Queue                QueueConfig
	SeedDoctorPassword   string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// QueueConfig holds the tuning knobs of the queue engine.
type QueueConfig struct {
	TokenPrefix       string
	OverloadThreshold float64
	OverloadPenalty   float64
	LoadFactor        float64
	PeakStartHour     int
	PeakEndHour       int
	PeakFactor        float64
	EmergencyKeywords []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hospital_queue"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	queueConfig, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}

	// Return complete configuration
	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:4200"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Database:             dbConfig,
		Queue:                queueConfig,
		SeedDoctorPassword:   getEnv("SEED_DOCTOR_PASSWORD", "change-me-please"),
	}, nil
}

func loadQueueConfig() (QueueConfig, error) {
	cfg := QueueConfig{
		TokenPrefix: getEnv("QUEUE_TOKEN_PREFIX", "HQ"),
	}

	var err error
	if cfg.OverloadThreshold, err = getEnvFloat("QUEUE_OVERLOAD_THRESHOLD", 0.8); err != nil {
		return cfg, err
	}
	if cfg.OverloadPenalty, err = getEnvFloat("QUEUE_OVERLOAD_PENALTY", 1.3); err != nil {
		return cfg, err
	}
	if cfg.LoadFactor, err = getEnvFloat("QUEUE_LOAD_FACTOR", 2.0); err != nil {
		return cfg, err
	}
	if cfg.PeakFactor, err = getEnvFloat("QUEUE_PEAK_FACTOR", 1.0); err != nil {
		return cfg, err
	}
	if cfg.PeakStartHour, err = getEnvInt("QUEUE_PEAK_START_HOUR", 0); err != nil {
		return cfg, err
	}
	if cfg.PeakEndHour, err = getEnvInt("QUEUE_PEAK_END_HOUR", 0); err != nil {
		return cfg, err
	}

	if keywords := getEnv("QUEUE_EMERGENCY_KEYWORDS", ""); keywords != "" {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				cfg.EmergencyKeywords = append(cfg.EmergencyKeywords, kw)
			}
		}
	}

	return cfg, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
