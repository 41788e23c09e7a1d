package config_test

import (
	"os"
	"testing"

	"github.com/amirasaad/marketplace/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/marketplace")
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "postgres://localhost:5432/marketplace", cfg.DB.Url)
	assert.Equal(t, "whsec_test", cfg.Stripe.WebhookSecret)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv registers the restore; the variable must be genuinely unset
	// because envconfig accepts a present-but-empty value for required fields.
	t.Setenv("DATABASE_URL", "placeholder")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	_, err := config.Load()
	assert.Error(t, err)
}
