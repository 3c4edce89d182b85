package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Razorpay  RazorpayConfig
	Admin     AdminConfig
	SMTP      SMTPGroup
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	ProductName        string
	DownloadURL        string
}

type DatabaseConfig struct {
	Connection string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// AdminCredential is a single static admin account. The list is loaded once
// at startup and never mutated.
type AdminCredential struct {
	Email    string
	Password string
}

type AdminConfig struct {
	Credentials []AdminCredential
	JWTSecret   string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// SMTPGroup holds the two independently configured mail transports:
// Admin carries OTP mail, Customer carries purchase confirmations.
type SMTPGroup struct {
	Admin    SMTPConfig
	Customer SMTPConfig
}

type AnalyticsConfig struct {
	ClientEmail string
	PrivateKey  string
	ProjectID   string
	PropertyID  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "4000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
			RedisURL:           getEnv("REDIS_URL", ""),
			ProductName:        getEnv("PRODUCT_NAME", "Pêche E-Book"),
			DownloadURL:        getEnv("EBOOK_DOWNLOAD_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Razorpay: RazorpayConfig{
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		},
		Admin: AdminConfig{
			Credentials: parseCredentials(getEnv("ADMIN_CREDENTIALS", "")),
			JWTSecret:   getEnv("JWT_SECRET", ""),
		},
		SMTP: SMTPGroup{
			Admin: SMTPConfig{
				Host:       getEnv("ADMIN_SMTP_HOST", ""),
				Port:       getEnvAsInt("ADMIN_SMTP_PORT", 587),
				Email:      getEnv("ADMIN_SMTP_EMAIL", ""),
				Password:   getEnv("ADMIN_SMTP_PASSWORD", ""),
				SenderName: getEnv("ADMIN_SMTP_SENDER_NAME", "Pêche Admin"),
			},
			Customer: SMTPConfig{
				Host:       getEnv("CUSTOMER_SMTP_HOST", ""),
				Port:       getEnvAsInt("CUSTOMER_SMTP_PORT", 587),
				Email:      getEnv("CUSTOMER_SMTP_EMAIL", ""),
				Password:   getEnv("CUSTOMER_SMTP_PASSWORD", ""),
				SenderName: getEnv("CUSTOMER_SMTP_SENDER_NAME", "Pêche"),
			},
		},
		Analytics: AnalyticsConfig{
			ClientEmail: getEnv("GOOGLE_CLIENT_EMAIL", ""),
			PrivateKey:  getEnv("GOOGLE_PRIVATE_KEY", ""),
			ProjectID:   getEnv("GOOGLE_PROJECT_ID", ""),
			PropertyID:  getEnv("GA_PROPERTY_ID", ""),
		},
	}
}

// parseCredentials reads "email:password" pairs separated by commas.
func parseCredentials(raw string) []AdminCredential {
	var creds []AdminCredential
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			log.Printf("Warning: skipping malformed ADMIN_CREDENTIALS entry")
			continue
		}
		creds = append(creds, AdminCredential{Email: parts[0], Password: parts[1]})
	}
	return creds
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
