package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	SMTP         SMTPConfig
	Storage      StorageConfig
	Admin        AdminConfig
	Notification NotificationConfig
	Environment  string
	APIEndpoint  string
	SiteURL      string
	LogLevel     string
	Version      string
	CORSOrigins  []string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// StorageConfig configures the S3-compatible blob store used for uploaded
// images. When Bucket is empty the app falls back to in-memory storage,
// which is only suitable for development.
type StorageConfig struct {
	Endpoint       string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	PublicBaseURL  string
	ForcePathStyle bool
}

// AdminConfig holds the single shared-secret admin credential. If
// PasswordHash is set it takes precedence and is verified with bcrypt,
// otherwise Password is compared in constant time. SecretKey signs the
// session cookie.
type AdminConfig struct {
	Password      string
	PasswordHash  string
	SecretKey     string
	AlertEmail    string
	SessionCookie string
}

type NotificationConfig struct {
	WebhookURL string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "chromacraft")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("API_ENDPOINT", "http://localhost:8080")
	v.SetDefault("SITE_URL", "http://localhost:3000")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "ChromaCraft Auto Refinishing")

	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_FORCE_PATH_STYLE", false)

	v.SetDefault("ADMIN_SESSION_COOKIE", "admin_session")

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// The env file is optional, environment variables alone are fine
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such file") {
					return nil, fmt.Errorf("error reading config file: %w", err)
				}
			}
		}
	}

	v.AutomaticEnv()

	adminPassword := v.GetString("ADMIN_PASSWORD")
	adminPasswordHash := v.GetString("ADMIN_PASSWORD_HASH")
	if adminPassword == "" && adminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}

	secretKey := v.GetString("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	var corsOrigins []string
	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			corsOrigins = append(corsOrigins, origin)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Storage: StorageConfig{
			Endpoint:       v.GetString("STORAGE_ENDPOINT"),
			Region:         v.GetString("STORAGE_REGION"),
			Bucket:         v.GetString("STORAGE_BUCKET"),
			AccessKey:      v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:      v.GetString("STORAGE_SECRET_KEY"),
			PublicBaseURL:  v.GetString("STORAGE_PUBLIC_BASE_URL"),
			ForcePathStyle: v.GetBool("STORAGE_FORCE_PATH_STYLE"),
		},
		Admin: AdminConfig{
			Password:      adminPassword,
			PasswordHash:  adminPasswordHash,
			SecretKey:     secretKey,
			AlertEmail:    v.GetString("ADMIN_ALERT_EMAIL"),
			SessionCookie: v.GetString("ADMIN_SESSION_COOKIE"),
		},
		Notification: NotificationConfig{
			WebhookURL: v.GetString("NOTIFICATION_WEBHOOK_URL"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		APIEndpoint: v.GetString("API_ENDPOINT"),
		SiteURL:     v.GetString("SITE_URL"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
		CORSOrigins: corsOrigins,
	}

	return cfg, nil
}

// IsDevelopment returns true when running in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
