package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "http://localhost:5000"

type Config struct {
	Port           string
	GinMode        string
	APIBaseURL     string
	DatabaseDSN    string
	AllowedOrigins []string
	FrontendPath   string
}

// Load reads the environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8083"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", defaultAPIBaseURL), "/"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=cafe_console port=5432 sslmode=disable"),
		FrontendPath: getEnv("FRONTEND_PATH", "./frontend/build"),
	}

	cfg.AllowedOrigins = []string{"http://localhost:3000"}
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.APIBaseURL == defaultAPIBaseURL {
		log.Println("[WARN] API_BASE_URL not set, using " + defaultAPIBaseURL)
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
