package config

import (
	"os"
)

type Config struct {
	Port            string
	Environment     string
	SupabaseURL     string
	SupabaseDBURL   string
	SupabaseJWKSURL string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	CORSOrigins     string
	TablePrefix     string
	// AllowHeaderAuth accepts an X-User-Id header as the owning-user id
	// when no bearer token is present. Defaults on outside prod; the
	// frontend dev setup and the seed tooling rely on it.
	AllowHeaderAuth bool
	// AutoMigrate applies embedded schema migrations on startup.
	AutoMigrate bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	supabaseURL := getEnv("SUPABASE_URL", "")

	// Construct JWKS URL from Supabase URL
	jwksURL := supabaseURL + "/auth/v1/.well-known/jwks.json"

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		SupabaseURL:     supabaseURL,
		SupabaseDBURL:   getEnv("SUPABASE_DB_URL", ""),
		SupabaseJWKSURL: jwksURL,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:     os.Getenv("TABLE_PREFIX"),
		AllowHeaderAuth: getEnv("ALLOW_HEADER_AUTH", defaultForEnv(env)) == "true",
		AutoMigrate:     getEnv("AUTO_MIGRATE", "true") == "true",
	}
}

// defaultForEnv returns the header-auth default: off in prod, on elsewhere
func defaultForEnv(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
