package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lingo/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: lingo
  log:
    level: info
http:
  port: 5000
storage:
  driver: memory
session:
  secret: yaml-secret
  ttl: 2h
  cookieName: jwt
content:
  path: data/german_content.json
`

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "lingo", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, constants.StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "data/german_content.json", cfg.Content.Path)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "jwt", cfg.Session.CookieName)
	assert.Equal(t, defaultContentKey, cfg.Content.Key)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Storage.Driver = constants.StorageDriverMemory
		cfg.Session.Secret = "secret"
		cfg.Content.Path = "data/german_content.json"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid memory", mutate: func(*Config) {}},
		{name: "postgres without section", mutate: func(c *Config) { c.Storage.Driver = constants.StorageDriverPostgres }, wantErr: "postgres section"},
		{name: "redis without addr", mutate: func(c *Config) { c.Storage.Driver = constants.StorageDriverRedis }, wantErr: "redis.addr"},
		{name: "redis with addr", mutate: func(c *Config) {
			c.Storage.Driver = constants.StorageDriverRedis
			c.Redis = &RedisConfig{Addr: "localhost:6379"}
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: "unknown storage driver"},
		{name: "missing secret", mutate: func(c *Config) { c.Session.Secret = "" }, wantErr: "session.secret"},
		{name: "missing content", mutate: func(c *Config) { c.Content.Path = "" }, wantErr: "content.bucketUrl"},
		{name: "bucket only", mutate: func(c *Config) {
			c.Content.Path = ""
			c.Content.BucketURL = "file:///srv/data"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
