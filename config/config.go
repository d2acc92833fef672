package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string

	// Mock API server settings (development only)
	MockPort  string
	JWTKey    string
	SaltRound int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		APIBaseURL:     getEnv("EDUCONNECT_API_URL", "http://localhost:4000"),
		RequestTimeout: time.Duration(getEnvInt("EDUCONNECT_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionFile:    getEnv("EDUCONNECT_SESSION_FILE", defaultSessionFile()),

		MockPort:  getEnv("MOCK_API_PORT", "4000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// defaultSessionFile places the session alongside other per-user config
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".educonnect-session.json"
	}
	return filepath.Join(dir, "educonnect", "session.json")
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
