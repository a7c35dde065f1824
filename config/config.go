// config/config.go
package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server ServerConfig
	Mpesa  MpesaConfig

	// AllowedOrigins is the list of frontend origins allowed through CORS.
	AllowedOrigins []string
}

type ServerConfig struct {
	Port string
	Env  string
}

type MpesaConfig struct {
	Environment    string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

// Load reads configuration from the environment (a local .env file is
// picked up when present). Missing or malformed values are logged as
// warnings; the service starts degraded rather than refusing to boot.
func Load(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment", zap.Error(err))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENVIRONMENT", "development"),
		},
		Mpesa: MpesaConfig{
			Environment:    getEnv("MPESA_ENVIRONMENT", "sandbox"),
			ConsumerKey:    getEnv("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      getEnv("MPESA_SHORTCODE", ""),
			Passkey:        getEnv("MPESA_PASSKEY", ""),
			CallbackURL:    getEnv("MPESA_CALLBACK_URL", ""),
		},
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	cfg.validate(logger)

	return cfg
}

// validate checks presence and basic shape of the M-Pesa credentials.
// It only warns: a missing credential means every push will fail with an
// auth error, but the health and callback routes still need to serve.
func (c *Config) validate(logger *zap.Logger) {
	if c.Mpesa.ConsumerKey == "" {
		logger.Warn("MPESA_CONSUMER_KEY is not set")
	}
	if c.Mpesa.ConsumerSecret == "" {
		logger.Warn("MPESA_CONSUMER_SECRET is not set")
	}
	if c.Mpesa.Passkey == "" {
		logger.Warn("MPESA_PASSKEY is not set")
	}

	if c.Mpesa.ShortCode == "" {
		logger.Warn("MPESA_SHORTCODE is not set")
	} else if !isNumeric(c.Mpesa.ShortCode) {
		logger.Warn("MPESA_SHORTCODE is not numeric",
			zap.String("shortcode", c.Mpesa.ShortCode))
	}

	if c.Mpesa.CallbackURL == "" {
		logger.Warn("MPESA_CALLBACK_URL is not set")
	} else if u, err := url.Parse(c.Mpesa.CallbackURL); err != nil || u.Scheme != "https" {
		// Daraja rejects non-HTTPS callback URLs.
		logger.Warn("MPESA_CALLBACK_URL is not a valid https URL",
			zap.String("callback_url", c.Mpesa.CallbackURL))
	}

	switch c.Mpesa.Environment {
	case "sandbox", "production":
	default:
		logger.Warn("unknown MPESA_ENVIRONMENT, defaulting to sandbox",
			zap.String("environment", c.Mpesa.Environment))
		c.Mpesa.Environment = "sandbox"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
