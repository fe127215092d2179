package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server. Everything comes from
// the environment (with .env support for local development); only the
// session secret is mandatory.
type Config struct {
	ServerPort            string
	DatabasePath          string
	ImageRepositoryDir    string
	SessionSecret         string
	SessionTimeoutMinutes int
	AllowNewUsers         bool
}

func Load() *Config {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &Config{
		ServerPort:            getEnvOr("SERVER_PORT", "8080"),
		DatabasePath:          getEnvOr("DATABASE_PATH", "AppFiles/database/app.db"),
		ImageRepositoryDir:    getEnvOr("IMAGE_REPOSITORY_DIR", "AppFiles/ImageRepository"),
		SessionSecret:         getEnv("SESSION_SECRET"),
		SessionTimeoutMinutes: getEnvInt("SESSION_TIMEOUT_MINUTES", 30),
		AllowNewUsers:         getEnvBool("ALLOW_NEW_USERS", true),
	}
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}

func getEnvOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %t", key, value, fallback)
		return fallback
	}
	return b
}
