// config.go - Handles configuration for the project

package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values
type Config struct {
	ServerPort string // Port the HTTP server listens on
	GinMode    string // gin.DebugMode / gin.ReleaseMode / gin.TestMode

	DBDriver string // sqlite, postgres or mysql
	DBPath   string // Path to the SQLite database file
	DBDSN    string // DSN for postgres/mysql

	BcryptCost int // Cost factor for password hashing

	LogLevel  string // debug, info, warn, error
	LogFormat string // json or console

	CORSOrigins []string // Allowed browser origins

	AuthRequired bool   // Enforce bearer tokens on mutating endpoints
	JWTSecret    string // Secret key for JWT signing
	JWTTTLHours  int    // Token lifetime

	MQTTBroker      string // Broker address; empty disables product events
	MQTTClientID    string
	MQTTTopicPrefix string

	SeedAdminUsername string // Bootstrap admin created on an empty admins table
	SeedAdminPassword string
	SeedAdminPhone    string
}

// Load reads config from environment variables or uses defaults
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:   getEnv("DB_PATH", "data.db"),
		DBDSN:    getEnv("DB_DSN", ""),

		BcryptCost: getEnvAsInt("BCRYPT_COST", 10),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		AuthRequired: getEnvAsBool("AUTH_REQUIRED", false),
		JWTSecret:    getEnv("JWT_SECRET", "supersecret"),
		JWTTTLHours:  getEnvAsInt("JWT_TTL_HOURS", 72),

		MQTTBroker:      getEnv("MQTT_BROKER", ""),
		MQTTClientID:    getEnv("MQTT_CLIENT_ID", "go-shop-backend"),
		MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "shop"),

		SeedAdminUsername: getEnv("SEED_ADMIN_USERNAME", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedAdminPhone:    getEnv("SEED_ADMIN_PHONE", ""),
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if value, err := strconv.ParseBool(raw); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
