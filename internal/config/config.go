package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the full application configuration, populated from
// environment variables.
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Stripe StripeConfig
	Redis  RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
}

type MongoConfig struct {
	URI      string
	Database string
}

// Auth mode selects the token verifier implementation:
// "firebase" delegates to the Firebase Admin SDK, "jwt" verifies a
// static-secret HMAC token locally.
type AuthConfig struct {
	Mode              string
	JWTSecret         string
	FirebaseKeyBase64 string
}

type StripeConfig struct {
	Secret     string
	SiteDomain string // frontend origin for success/cancel redirects
	Currency   string
}

type RedisConfig struct {
	Host     string // empty disables Redis, role cache falls back to memory
	Password string
	DB       int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Booklend API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "courier-db"),
		},
		Auth: AuthConfig{
			Mode:              getEnv("AUTH_MODE", "jwt"),
			JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			FirebaseKeyBase64: getEnv("FIREBASE_KEY_BASE64", ""),
		},
		Stripe: StripeConfig{
			Secret:     getEnv("STRIPE_SECRET", ""),
			SiteDomain: getEnv("SITE_DOMAIN", "http://localhost:5173"),
			Currency:   getEnv("PAYMENT_CURRENCY", "usd"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks settings that must not reach production with defaults.
func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case "jwt", "firebase":
	default:
		return fmt.Errorf("AUTH_MODE must be jwt or firebase, got %q", c.Auth.Mode)
	}
	if c.Auth.Mode == "firebase" && c.Auth.FirebaseKeyBase64 == "" {
		return fmt.Errorf("FIREBASE_KEY_BASE64 must be set when AUTH_MODE=firebase")
	}
	if c.App.Environment == "production" {
		if c.Auth.Mode == "jwt" && c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Stripe.Secret == "" {
			return fmt.Errorf("STRIPE_SECRET must be set in production")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
