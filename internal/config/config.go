// Package config handles configuration loading for the rental service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// MinSecretLength is the minimum accepted token signing secret length in bytes.
const MinSecretLength = 32

// Config holds all configuration for the rental service.
type Config struct {
	Port        string `env:"PORT" env-default:"8084"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	LogFormat   string `env:"LOG_FORMAT"`
	StoreDriver string `env:"STORE_DRIVER" env-default:"postgres"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"rentals"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	MongoURI string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" env-default:"rentals"`

	RedisHost     string `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     string `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret string `env:"ACCESS_TOKEN_SECRET" env-required:"true"`

	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000"`

	EmailHost     string        `env:"EMAIL_HOST"`
	EmailPort     int           `env:"EMAIL_PORT" env-default:"465"`
	EmailUsername string        `env:"EMAIL_USERNAME"`
	EmailPassword string        `env:"EMAIL_PASSWORD"`
	EmailFrom     string        `env:"EMAIL_FROM"`
	EmailTimeout  time.Duration `env:"EMAIL_TIMEOUT" env-default:"15s"`

	AIServiceURL     string        `env:"AI_SERVICE_URL" env-default:"http://127.0.0.1:8000"`
	AIServiceTimeout time.Duration `env:"AI_SERVICE_TIMEOUT" env-default:"10s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:5174"`
	SwaggerHost    string   `env:"SWAGGER_HOST"`

	ResetRequestLimit  int           `env:"RESET_REQUEST_LIMIT" env-default:"5"`
	ResetRequestWindow time.Duration `env:"RESET_REQUEST_WINDOW" env-default:"15m"`
}

// Load reads configuration from the environment, after loading a .env file when one exists.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that struct tags cannot express.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < MinSecretLength {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must be at least %d bytes", MinSecretLength)
	}

	switch c.StoreDriver {
	case StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.ResetRequestLimit < 0 {
		return errors.New("RESET_REQUEST_LIMIT cannot be negative")
	}

	c.FrontendURL = strings.TrimSuffix(c.FrontendURL, "/")
	c.AIServiceURL = strings.TrimSuffix(c.AIServiceURL, "/")

	return nil
}

// PostgresDSN builds the gorm postgres connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
