package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	CORSAllowOrigin []string
	LogLevel        string
	LogFormat       string
	VocabularyFile  string
	MaxTextBytes    int64
	RateLimitRPS    float64
	RateLimitBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience. Existing
	// variables win.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		DatabaseURL:     dbURL,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		VocabularyFile:  getEnv("VOCABULARY_FILE", ""),
		MaxTextBytes:    getInt64("MAX_TEXT_BYTES", 1<<20),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  int(getInt64("RATE_LIMIT_BURST", 10)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 {
		log.Printf("invalid %s=%q, using %g", key, raw, def)
		return def
	}
	return f
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
