package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
)

// Config is read once at startup. The per-shop posting policy in
// Defaults only applies to shops without a stored settings record.
type Config struct {
	Port          string
	DatabaseURL   string
	ProxySecret   string
	SessionSecret string
	AdminPassword string

	// Every persistence call inherits this deadline from the request.
	RequestTimeout time.Duration

	Defaults models.Settings
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=community port=5432 sslmode=disable"),
		ProxySecret:   os.Getenv("PROXY_SHARED_SECRET"),
		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		RequestTimeout: time.Duration(getenvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,

		Defaults: models.Settings{
			AllowAnonymous:    getenvBool("ALLOW_ANONYMOUS", true),
			AutoApprove:       getenvBool("AUTO_APPROVE", false),
			EditWindowMinutes: getenvInt("EDIT_WINDOW_MINUTES", 15),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
