package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAdminCredential(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "swordfish")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "swordfish")
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "chromacraft", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "admin_session", cfg.Admin.SessionCookie)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "swordfish")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("CORS_ORIGINS", "https://chromacraft.example, https://admin.chromacraft.example")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.Admin.PasswordHash)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{
		"https://chromacraft.example",
		"https://admin.chromacraft.example",
	}, cfg.CORSOrigins)
}
