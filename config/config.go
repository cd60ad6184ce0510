package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Env                      string
	Port                     string
	DBURL                    string
	TokenSecret              string
	SessionTokenExpiryMin    int
	VerificationTokenExpiryH int
	VerificationBaseURL      string
	RequireVerifiedLogin     bool
	AllowedOrigins           string
}

func Load() *Config {
	return &Config{
		Env:                      getEnv("ENV", "development"),
		Port:                     getEnv("PORT", "8080"),
		DBURL:                    mustGetEnv("DB_URL"),
		TokenSecret:              mustGetEnv("TOKEN_SECRET"),
		SessionTokenExpiryMin:    getEnvAsInt("SESSION_TOKEN_EXPIRY", 60),
		VerificationTokenExpiryH: getEnvAsInt("VERIFICATION_TOKEN_EXPIRY", 24),
		VerificationBaseURL:      mustGetEnv("VERIFICATION_BASE_URL"),
		RequireVerifiedLogin:     getEnvAsBool("REQUIRE_VERIFIED_LOGIN", false),
		AllowedOrigins:           getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatal().Msgf("missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warn().Msgf("invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Warn().Msgf("invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
