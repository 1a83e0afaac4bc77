// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commentbox/internal/util"
)

func TestLoadConfig_MissingStoreCredentialsIsFatal(t *testing.T) {
	t.Setenv("STORE_URL", "")
	t.Setenv("STORE_API_KEY", "")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	var connErr *util.DatabaseConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestLoadConfig_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("STORE_URL", "postgres://db.example.com:5432/comments")
	t.Setenv("STORE_API_KEY", "")

	_, err := LoadConfig()

	var connErr *util.DatabaseConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestLoadConfig_DefaultPort(t *testing.T) {
	t.Setenv("STORE_URL", "postgres://db.example.com:5432/comments")
	t.Setenv("STORE_API_KEY", "service-key")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "7654", cfg.ServerPort)
	assert.Equal(t, "postgres://db.example.com:5432/comments", cfg.Store.URL)
	assert.Equal(t, "service-key", cfg.Store.APIKey)
}

func TestLoadConfig_ExplicitPort(t *testing.T) {
	t.Setenv("STORE_URL", "postgres://db.example.com:5432/comments")
	t.Setenv("STORE_API_KEY", "service-key")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
}
