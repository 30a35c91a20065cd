package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	JWTSecret            string
	JWTAccessExpiration  time.Duration
	JWTRefreshExpiration time.Duration
	FrontendURL          string
	MongoDBURI           string
	MongoDBDatabase      string

	// Ingestion: either the Apps Script exec URL, or a spreadsheet read via
	// the Sheets API (service-account JSON or API key).
	AppScriptURL             string
	SpreadsheetID            string
	SheetRange               string
	GoogleAPIKey             string
	GoogleServiceAccountJSON string

	RefreshInterval time.Duration

	// Seed admin created at startup when no account exists yet.
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	accessExp, _ := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION", "15m"))
	refreshExp, _ := time.ParseDuration(getEnv("JWT_REFRESH_EXPIRATION", "168h"))
	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "5m"))
	if err != nil || refreshInterval <= 0 {
		refreshInterval = 5 * time.Minute
	}

	return &Config{
		Port:                     getEnv("PORT", "8080"),
		JWTSecret:                getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiration:      accessExp,
		JWTRefreshExpiration:     refreshExp,
		FrontendURL:              getEnv("FRONTEND_URL", "http://localhost:3000"),
		MongoDBURI:               getEnv("MONGODB_URI", ""),
		MongoDBDatabase:          getEnv("MONGODB_DATABASE", "nedhal"),
		AppScriptURL:             getEnv("APPSCRIPT_URL", ""),
		SpreadsheetID:            getEnv("SPREADSHEET_ID", ""),
		SheetRange:               getEnv("SHEET_RANGE", "Responses!A2:D"),
		GoogleAPIKey:             getEnv("GOOGLE_API_KEY", ""),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		RefreshInterval:          refreshInterval,
		AdminEmail:               getEnv("ADMIN_EMAIL", ""),
		AdminPassword:            getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
