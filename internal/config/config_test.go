package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8084" {
		t.Errorf("Port = %s, want 8084", cfg.Port)
	}
	if cfg.StoreDriver != StorePostgres {
		t.Errorf("StoreDriver = %s, want %s", cfg.StoreDriver, StorePostgres)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("FrontendURL = %s, want http://localhost:3000", cfg.FrontendURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v, want default vite origins", cfg.AllowedOrigins)
	}
	if cfg.ResetRequestLimit != 5 {
		t.Errorf("ResetRequestLimit = %d, want 5", cfg.ResetRequestLimit)
	}
	if cfg.ResetRequestWindow != 15*time.Minute {
		t.Errorf("ResetRequestWindow = %v, want 15m", cfg.ResetRequestWindow)
	}
	if cfg.EmailPort != 465 || cfg.EmailTimeout != 15*time.Second {
		t.Errorf("EmailPort = %d, EmailTimeout = %v, want 465 and 15s", cfg.EmailPort, cfg.EmailTimeout)
	}
	if cfg.AIServiceURL != "http://127.0.0.1:8000" || cfg.AIServiceTimeout != 10*time.Second {
		t.Errorf("AIServiceURL = %s, AIServiceTimeout = %v", cfg.AIServiceURL, cfg.AIServiceTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", testSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("FRONTEND_URL", "https://rentals.example.com/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("RESET_REQUEST_WINDOW", "1h")
	t.Setenv("EMAIL_PORT", "587")
	t.Setenv("AI_SERVICE_URL", "http://predictor:8000/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	if cfg.StoreDriver != StoreMongo {
		t.Errorf("StoreDriver = %s, want mongo", cfg.StoreDriver)
	}
	if cfg.FrontendURL != "https://rentals.example.com" {
		t.Errorf("FrontendURL = %s, want trailing slash trimmed", cfg.FrontendURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.ResetRequestWindow != time.Hour {
		t.Errorf("ResetRequestWindow = %v, want 1h", cfg.ResetRequestWindow)
	}
	if cfg.EmailPort != 587 {
		t.Errorf("EmailPort = %d, want 587", cfg.EmailPort)
	}
	if cfg.AIServiceURL != "http://predictor:8000" {
		t.Errorf("AIServiceURL = %s, want trailing slash trimmed", cfg.AIServiceURL)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail for a secret shorter than 32 bytes")
	}
	if !strings.Contains(err.Error(), "ACCESS_TOKEN_SECRET") {
		t.Errorf("error = %v, want mention of ACCESS_TOKEN_SECRET", err)
	}
}

func TestLoad_UnsupportedStore(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject unknown store drivers")
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "pw",
		DBName:     "rentals",
		DBSSLMode:  "disable",
	}

	want := "host=db port=5432 user=app password=pw dbname=rentals sslmode=disable TimeZone=UTC"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("PostgresDSN() = %s, want %s", got, want)
	}
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache", RedisPort: "6380"}
	if got := cfg.RedisAddr(); got != "cache:6380" {
		t.Errorf("RedisAddr() = %s, want cache:6380", got)
	}
}
