package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string

	// Presence flags captured at load time, reported by GET /test.
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func Load() *Config {
	// Only load .env when running locally; hosted environments inject
	// variables directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	_, urlSet := os.LookupEnv("DATABASE_URL")
	_, nameSet := os.LookupEnv("DATABASE_NAME")

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseName:    getEnv("DATABASE_NAME", "storefront"),
		Port:            getEnv("PORT", "8000"),
		DatabaseURLSet:  urlSet,
		DatabaseNameSet: nameSet,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
