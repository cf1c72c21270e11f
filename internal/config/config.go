package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the kiosk reads from the environment.
// Only the Gemini and R2 blocks are optional: without Gemini the
// import feature is disabled, without R2 images are archived locally.
type Config struct {
	Port     string
	AdminPIN string
	DataPath string

	GeminiAPIKey string
	GeminiModel  string

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string

	UploadDir string
}

// Load reads .env outside production and applies defaults.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:     getenv("PORT", "8080"),
		AdminPIN: getenv("ADMIN_PIN", "8888"),
		DataPath: getenv("DATA_PATH", "kiosk.db"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),

		R2Endpoint:      os.Getenv("R2_ENDPOINT"),
		R2AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("R2_SECRET_KEY"),
		R2Bucket:        os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),

		UploadDir: getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.GeminiAPIKey == "" || cfg.GeminiModel == "" {
		log.Println("GEMINI_API_KEY / GEMINI_MODEL not set; menu import disabled")
	}

	return cfg
}

// GeminiConfigured reports whether the import collaborator can run.
func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != "" && c.GeminiModel != ""
}

// R2Configured reports whether the R2 archive has full credentials.
func (c Config) R2Configured() bool {
	return c.R2Endpoint != "" &&
		c.R2AccessKey != "" &&
		c.R2SecretKey != "" &&
		c.R2Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
