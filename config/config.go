package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	SMTP     SMTPConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type FirebaseConfig struct {
	CredentialsPath string
	DatabaseURL     string
}

// AuthConfig selects how bearer tokens on admin routes are checked.
// "presence" accepts any non-empty token; "firebase" verifies ID tokens.
type AuthConfig struct {
	Mode string
}

type CORSConfig struct {
	// AllowedOrigins lists non-localhost origins (e.g. the deployed console).
	// Any http://localhost:<port> origin is always accepted.
	AllowedOrigins []string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type AppConfig struct {
	Environment string
	Version     string
}

const (
	AuthModePresence = "presence"
	AuthModeFirebase = "firebase"
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			Mode: getEnv("AUTH_MODE", AuthModePresence),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Firebase.DatabaseURL == "" {
		return fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}

	if c.Auth.Mode != AuthModePresence && c.Auth.Mode != AuthModeFirebase {
		return fmt.Errorf("AUTH_MODE must be %q or %q", AuthModePresence, AuthModeFirebase)
	}

	return nil
}

// MailEnabled reports whether SMTP delivery is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
