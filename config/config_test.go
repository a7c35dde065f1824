package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("MPESA_ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load(zap.NewNop())

	// Missing credentials only warn; the service still gets a config.
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "sandbox", cfg.Mpesa.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MPESA_ENVIRONMENT", "production")
	t.Setenv("MPESA_CONSUMER_KEY", "key")
	t.Setenv("MPESA_CONSUMER_SECRET", "secret")
	t.Setenv("MPESA_SHORTCODE", "174379")
	t.Setenv("MPESA_PASSKEY", "passkey")
	t.Setenv("MPESA_CALLBACK_URL", "https://example.com/api/mpesa/callback")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load(zap.NewNop())

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Mpesa.Environment)
	assert.Equal(t, "174379", cfg.Mpesa.ShortCode)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_UnknownEnvironmentFallsBackToSandbox(t *testing.T) {
	t.Setenv("MPESA_ENVIRONMENT", "staging")

	cfg := Load(zap.NewNop())

	assert.Equal(t, "sandbox", cfg.Mpesa.Environment)
}
