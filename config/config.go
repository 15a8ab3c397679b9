package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"train-booking/logger"
)

const defaultJWTSecret = "change-me-in-production"

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Booking documents
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Listing snapshot cache and booking events
	RedisAddr       string
	AMQPURL         string
	BookingExchange string

	// Train listings
	TrainListingURL  string
	TrainSnapshotTTL time.Duration

	// Assistant model
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Server
	ServerPort string
	GinMode    string
	LogLevel   string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "trainpass123"),
		DBName:     getEnv("DB_NAME", "trainbooking"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "trainbooking"),
		MongoUser:     os.Getenv("MONGO_USER"),
		MongoPassword: os.Getenv("MONGO_PASSWORD"),

		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		AMQPURL:         os.Getenv("AMQP_URL"),
		BookingExchange: getEnv("BOOKING_EXCHANGE", "bookings"),

		TrainListingURL:  getEnv("TRAIN_LISTING_URL", "https://mocki.io/v1/4115ceac-2508-437b-bf85-85113a97d4d1"),
		TrainSnapshotTTL: getEnvAsDuration("TRAIN_SNAPSHOT_TTL", 600, time.Second),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24, time.Hour),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	switch config.GinMode {
	case "debug", "release", "test":
	default:
		logger.GetLogger().Warnw("Unknown GIN_MODE, using release", "gin_mode", config.GinMode)
		config.GinMode = "release"
	}

	log := logger.GetLogger()
	if config.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, assistant will only answer waitlist questions")
	}
	if config.JWTSecret == defaultJWTSecret {
		log.Warn("JWT_SECRET not set, using the development default")
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration reads a count of unit. Zero or negative values fall back to the default.
func getEnvAsDuration(key string, defaultValue int, unit time.Duration) time.Duration {
	value := getEnvAsInt(key, defaultValue)
	if value <= 0 {
		logger.GetLogger().Warnw("Ignoring non-positive duration", "key", key, "value", value, "default", defaultValue)
		value = defaultValue
	}
	return time.Duration(value) * unit
}
