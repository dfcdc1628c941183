package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "Demmi", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "demmi.db", cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Second, cfg.Chat.ReplyDelay)
	assert.Equal(t, 15*time.Minute, cfg.Auth.JWTExpiration)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	payload := []byte(`
app:
  environment: production
auth:
  jwt_secret: super-secret
server:
  port: 9000
chat:
  reply_delay: 250ms
`)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.ReplyDelay)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("unknown database driver", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		cfg := base()
		cfg.Database.Path = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("memory driver needs no path", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "memory"
		cfg.Database.Path = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("production requires a jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		cfg.Auth.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("port range", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative reply delay", func(t *testing.T) {
		cfg := base()
		cfg.Chat.ReplyDelay = -time.Second
		assert.Error(t, cfg.Validate())
	})
}

func TestRedisAddr(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}
