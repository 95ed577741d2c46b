package app

import (
	"strings"
	"time"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/utils"
)

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AllowedOrigins  []string
	MediaRoot       string
	MediaBaseURL    string
	ServiceName     string
	Environment     string
	Version         string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	origins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	mediaRoot := utils.GetEnv("MEDIA_ROOT", "./media", log)
	mediaBaseURL := utils.GetEnv("MEDIA_BASE_URL", "http://localhost:8080/media", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	version := utils.GetEnv("SERVICE_VERSION", "dev", log)

	return Config{
		Port:            port,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		AllowedOrigins:  splitOrigins(origins),
		MediaRoot:       mediaRoot,
		MediaBaseURL:    mediaBaseURL,
		ServiceName:     "learnhub-backend",
		Environment:     environment,
		Version:         version,
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
