package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadPlaceholders(t *testing.T) {
	clearEnv(t, "DATABASE_URL", "GEMINI_API_KEY", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "JWT_SECRET", "ENCRYPTION_KEY", "FRONTEND_URL", "AI_PROVIDER")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, PlaceholderDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, PlaceholderJWTSecret, cfg.JWTSecret)
	assert.Equal(t, PlaceholderJWTSecret, cfg.SecretForEncryption())
	assert.Len(t, cfg.Warnings(), 5)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.False(t, cfg.UseOpenAI())
}

func TestOpenAIProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.False(t, cfg.UseOpenAI())
	assert.Contains(t, cfg.Warnings(), "AI_PROVIDER is openai but OPENAI_API_KEY is not set, falling back to Gemini")

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.UseOpenAI())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app@db/careers")
	t.Setenv("GEMINI_API_KEY", "AIza-test")
	t.Setenv("GOOGLE_CLIENT_ID", "client")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("ENCRYPTION_KEY", "enc")
	t.Setenv("FRONTEND_URL", "https://app.example.com/")
	t.Setenv("AI_RATE_LIMIT", "50")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PDF_RENDERER", "playwright")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings())
	assert.Equal(t, "https://app.example.com/auth/callback", cfg.OAuthRedirectURL())
	assert.Equal(t, 50, cfg.AIRateLimit)
	assert.Equal(t, "enc", cfg.SecretForEncryption())
	assert.True(t, cfg.UseRedis())
	assert.True(t, cfg.UsePlaywright())
	assert.False(t, cfg.UseS3())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t, "GEMINI_MODEL")
	os.Unsetenv("GEMINI_MODEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_MODEL=gemini-2.5-pro\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GEMINI_MODEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
}
