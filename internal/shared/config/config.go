package config

import (
	"os"
	"strconv"
	"strings"

	"portfolio-web/internal/shared/telemetry"
	"portfolio-web/internal/shared/util"
)

const defaultResumeDownloadName = "My_Portfolio_Resume.pdf"

// Config holds application configuration.
type Config struct {
	Port                   string
	Env                    string
	MediaStore             string
	MediaRoot              string
	AWSRegion              string
	S3Bucket               string
	S3Prefix               string
	ResumeDownloadName     string
	CORSAllowOrigin        []string
	SSLEnabled             bool
	TrustedProxies         []string
	RateLimitDownloadRPS   float64
	RateLimitDownloadBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	mediaRoot := getEnv("MEDIA_ROOT", "./media")

	if env == "production" && os.Getenv("MEDIA_ROOT") == "" {
		telemetry.Warn("config.media_root_default", map[string]any{"media_root": mediaRoot})
	}

	return Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    env,
		MediaStore:             normalizeStoreType(getEnv("MEDIA_STORE", "local")),
		MediaRoot:              mediaRoot,
		AWSRegion:              getEnv("AWS_REGION", ""),
		S3Bucket:               getEnv("S3_BUCKET", ""),
		S3Prefix:               getEnv("S3_PREFIX", "media"),
		ResumeDownloadName:     normalizeDownloadName(getEnv("RESUME_DOWNLOAD_NAME", defaultResumeDownloadName)),
		CORSAllowOrigin:        splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		SSLEnabled:             getEnvBool("SSL_ENABLED", false),
		TrustedProxies:         splitAndTrim(getEnv("TRUSTED_PROXIES", "127.0.0.1,::1,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16")),
		RateLimitDownloadRPS:   getEnvFloat("RATE_LIMIT_DOWNLOAD_RPS", 0),
		RateLimitDownloadBurst: getEnvInt("RATE_LIMIT_DOWNLOAD_BURST", 10),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
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
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

// normalizeDownloadName falls back to the default name when the configured one is unusable.
func normalizeDownloadName(raw string) string {
	name, err := util.SanitizeFileName(raw)
	if err != nil {
		return defaultResumeDownloadName
	}
	return name
}
