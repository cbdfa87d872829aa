package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittin/site/internal/chat"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	for _, key := range []string{"VITTIN_CHAT_API_KEY", "GEMINI_API_KEY", "API_KEY", "VITTIN_SERVER_PORT"} {
		t.Setenv(key, "")
	}
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, chat.DefaultModel, cfg.Chat.Model)
	assert.Equal(t, chat.DefaultSystemInstruction, cfg.Chat.SystemInstruction)
	assert.Equal(t, 30*time.Minute, cfg.Chat.SessionTTL)
	assert.Equal(t, "pt-BR", cfg.Site.Locale)
	assert.Equal(t, 2024, cfg.Site.Year)
	assert.False(t, cfg.ChatEnabled())
	assert.Empty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_CredentialPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"legacy name", map[string]string{"API_KEY": "legacy"}, "legacy"},
		{"gemini over legacy", map[string]string{"API_KEY": "legacy", "GEMINI_API_KEY": "gemini"}, "gemini"},
		{"prefixed wins", map[string]string{"API_KEY": "legacy", "GEMINI_API_KEY": "gemini", "VITTIN_CHAT_API_KEY": "own"}, "own"},
		{"whitespace only", map[string]string{"VITTIN_CHAT_API_KEY": "  "}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			for k, val := range tt.env {
				t.Setenv(k, val)
			}

			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Chat.APIKey)
			assert.Equal(t, tt.want != "", cfg.ChatEnabled())
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	v := newViper(t)
	t.Setenv("VITTIN_SERVER_PORT", "9090")
	t.Setenv("VITTIN_SERVER_ALLOWED_ORIGINS", "https://vittin.com, https://www.vittin.com")
	t.Setenv("VITTIN_CHAT_SESSION_TTL", "5m")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://vittin.com", "https://www.vittin.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.Chat.SessionTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"port out of range", "server.port", 70000},
		{"bad origin", "server.allowed_origins", []string{"vittin.com"}},
		{"zero ttl", "chat.session_ttl", time.Duration(0)},
		{"no burst", "chat.burst", 0},
		{"negative rate", "chat.rate", -1.0},
		{"watch without file", "content.watch", true},
		{"unknown level", "log.level", "loud"},
		{"unknown format", "log.format", "xml"},
		{"relative base url", "site.base_url", "/"},
		{"unparseable port", "server.port", "eighty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			v.Set(tt.key, tt.value)

			cfg, err := Load(v)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error %v should wrap ErrInvalidConfig", err)
		})
	}
}

func TestValidate_ContentFileExtension(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	cfg.Content.File = "content.json"
	assert.ErrorIs(t, Validate(cfg), ErrInvalidConfig)

	cfg.Content.File = "content.yaml"
	cfg.Content.Watch = true
	assert.NoError(t, Validate(cfg))
}
