package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Redis configuration (the flat key-value store backing CV/Portfolio collections)
	RedisURL      string
	RedisPassword string
	// Export configuration
	ExportDir       string
	WkhtmltopdfPath string // path to the wkhtmltopdf binary; empty means rely on PATH
	// Share configuration
	ShareBackend         string // "local" or "s3"
	ShareDir             string // local backend: directory exported files are shared from
	S3Bucket             string
	S3Region             string
	S3AccessKeyID        string
	S3SecretAccessKey    string
	S3PresignExpiryHours int
	// Image ingestion configuration
	ImageDir          string
	ImageMaxDimension int
	ImageJPEGQuality  int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		ExportDir:       getEnv("EXPORT_DIR", "./exports"),
		WkhtmltopdfPath: getEnv("WKHTMLTOPDF_PATH", ""),

		ShareBackend:         getEnv("SHARE_BACKEND", "local"),
		ShareDir:             getEnv("SHARE_DIR", "./shared"),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		S3Region:             getEnv("S3_REGION", "ap-southeast-1"),
		S3AccessKeyID:        getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PresignExpiryHours: getEnvInt("S3_PRESIGN_EXPIRY_HOURS", 24),

		ImageDir:          getEnv("IMAGE_DIR", "./images"),
		ImageMaxDimension: getEnvInt("IMAGE_MAX_DIMENSION", 1200),
		ImageJPEGQuality:  getEnvInt("IMAGE_JPEG_QUALITY", 80),
	}

	if cfg.ShareBackend == "s3" && cfg.S3Bucket == "" {
		log.Println("WARNING: SHARE_BACKEND=s3 but S3_BUCKET is missing. Sharing will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
