package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Clerk struct {
		SecretKey      string
		PublishableKey string
	}

	Email struct {
		From     string
		SMTPHost string
		SMTPPort string
		Username string
		Password string
		AdminTo  string
	}

	Upload struct {
		MaxSize int64
		Dir     string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/storefront.db"),
	}

	// Clerk
	config.Clerk.SecretKey = getEnv("CLERK_SECRET_KEY", "")
	config.Clerk.PublishableKey = getEnv("CLERK_PUBLISHABLE_KEY", "")

	// Email
	config.Email.From = getEnv("EMAIL_FROM", "noreply@localhost")
	config.Email.SMTPHost = getEnv("SMTP_HOST", "")
	config.Email.SMTPPort = getEnv("SMTP_PORT", "587")
	config.Email.Username = getEnv("SMTP_USERNAME", "")
	config.Email.Password = getEnv("SMTP_PASSWORD", "")
	config.Email.AdminTo = getEnv("EMAIL_ADMIN_TO", "")

	// Upload
	maxSize := getEnv("UPLOAD_MAX_SIZE", "104857600") // 100MB default
	if size, err := strconv.ParseInt(maxSize, 10, 64); err == nil {
		config.Upload.MaxSize = size
	} else {
		config.Upload.MaxSize = 104857600
	}
	config.Upload.Dir = getEnv("UPLOAD_DIR", "./public/uploads")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
