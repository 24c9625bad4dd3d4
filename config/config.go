package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	YouTubeApiKey string
	YouTubeApiUrl string

	// Redis cache for video metadata; caching is disabled when RedisAddr is empty
	RedisAddr     string
	RedisPassword string
	CacheTTLHours int

	// YouTube Data API quota protection, requests per second
	YouTubeRateLimit int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "5000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		YouTubeApiKey: getEnv("YOUTUBE_API_KEY", ""),
		YouTubeApiUrl: getEnv("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTLHours: getEnvInt("CACHE_TTL_HOURS", 24),

		YouTubeRateLimit: getEnvInt("YOUTUBE_RATE_LIMIT", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.YouTubeApiKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY is not set. Playlist conversion will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
