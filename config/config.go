package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries all environment-driven settings, loaded once at startup
// and passed explicitly to the components that need it.
type Config struct {
	Env  string // "development" or "production"
	Port string

	// Storage selects the repository backend: "postgres" or "memory".
	Storage     string
	DatabaseURL string

	OpenAIAPIKey    string
	OpenAIModel     string
	AIImagesEnabled bool

	JWTSecret string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		Storage:         getEnv("STORAGE", "postgres"),
		DatabaseURL:     databaseURL(),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AIImagesEnabled: getEnv("AI_IMAGES_ENABLED", "false") == "true",
		JWTSecret:       getEnv("JWT_SECRET", "dev-insecure-secret-change-me"),
	}
}

// AIConfigured reports whether the generation API credential is present.
func (c Config) AIConfigured() bool { return c.OpenAIAPIKey != "" }

// databaseURL prefers DATABASE_URL, falling back to discrete DB_* vars
// assembled into a DSN.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "sooqbot"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
