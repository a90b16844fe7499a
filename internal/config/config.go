package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the explicit configuration object handed to the container.
// Populated from environment variables; nothing reads the environment
// after startup.
type Config struct {
	App   AppConfig
	Site  SiteConfig
	Redis RedisConfig
	Email EmailConfig
	MinIO MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// SiteConfig carries site-facing settings: the public URL, the inbox
// contact notifications go to, CORS origin and the admin API token.
type SiteConfig struct {
	URL           string
	ContactInbox  string
	AllowedOrigin string
	AdminToken    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type EmailConfig struct {
	APIKey string // empty disables all sending
	From   string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Flowsite API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Site: SiteConfig{
			URL:           getEnv("SITE_URL", "https://flowproductions.pt"),
			ContactInbox:  getEnv("CONTACT_INBOX", "geral@flowproductions.pt"),
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
			AdminToken:    getEnv("ADMIN_API_TOKEN", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("EMAIL_FROM", "noreply@flowproductions.pt"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "flowsite"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks invariants that would otherwise surface as runtime
// failures long after boot.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Site.AdminToken == "" {
			fmt.Println("WARNING: ADMIN_API_TOKEN not set - admin API is disabled")
		}
		if c.Email.APIKey == "" {
			fmt.Println("WARNING: RESEND_API_KEY not set - transactional email is disabled")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
