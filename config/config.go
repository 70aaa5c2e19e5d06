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
	DBName string
	JWTKey string

	StripeApiURL    string
	StripeSecretKey string

	SendGridApiKey string
	EmailSender    string

	// Cron expression for the seat-reconciliation sweep
	ReconcileCron string

	PaymentTimeout int // seconds, per payment-gateway call
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
		DBName: getEnv("DB_NAME", "fluency"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		StripeApiURL:    getEnv("STRIPE_API_URL", "https://api.stripe.com"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@fluencymastery.com"),

		ReconcileCron: getEnv("RECONCILE_CRON", "@hourly"),

		PaymentTimeout: getEnvInt("PAYMENT_TIMEOUT", 30),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is empty. Payment intents will fail.")
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
