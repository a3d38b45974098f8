package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMaxUploadBytes is the upload limit used when MAX_UPLOAD_MB is unset or not positive.
const DefaultMaxUploadBytes int64 = 5 << 20

type Config struct {
	Port        string
	DatabaseURL string

	// DBRequired makes startup database errors fatal instead of falling back to built-in offers.
	DBRequired       bool
	DBReconnectEvery time.Duration
	StaticDir        string
	UploadDir        string
	MaxUploadBytes   int64
	UploadRetention  time.Duration
	MatchThreshold   int
	RedisURL         string
	JobsCacheTTL     time.Duration
	RabbitMQURL      string
	CORSOrigins      string
	S3               S3Config
}

// S3Config describes an S3-compatible bucket (AWS, R2, MinIO) for uploaded CVs.
type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether uploads should go to a bucket instead of the local disk.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "5000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBRequired:       getEnvBool("DB_REQUIRED", false),
		DBReconnectEvery: time.Duration(getEnvInt("DB_RECONNECT_INTERVAL_SECONDS", 10)) * time.Second,
		StaticDir:        os.Getenv("STATIC_DIR"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", 0)) << 20,
		UploadRetention:  time.Duration(getEnvInt("UPLOAD_RETENTION_HOURS", 24)) * time.Hour,
		MatchThreshold:   getEnvInt("MATCH_THRESHOLD", 30),
		RedisURL:         os.Getenv("REDIS_URL"),
		JobsCacheTTL:     time.Duration(getEnvInt("JOBS_CACHE_TTL_SECONDS", 60)) * time.Second,
		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "auto"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Prefix:    getEnv("S3_PREFIX", "cv"),
		},
	}
	if cfg.DBReconnectEvery <= 0 {
		cfg.DBReconnectEvery = 10 * time.Second
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
