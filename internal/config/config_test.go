package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 7, cfg.JWT.ExpirationDays)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, cfg.Server.BaseURL, cfg.Storage.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.PasswordReset.TTL)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/jobs")
	t.Setenv("JWT_EXPIRATION_DAYS", "30")
	t.Setenv("ADMIN_SECRET_KEY", "let-me-in")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RESET_DB", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost/jobs", cfg.Database.DSN)
	assert.Equal(t, 30, cfg.JWT.ExpirationDays)
	assert.Equal(t, "let-me-in", cfg.Admin.SecretKey)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.ResetDB)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Driver: "mysql", DSN: "dsn"},
			JWT:      JWTConfig{Secret: "s", Algorithm: "HS256", ExpirationDays: 7},
			Storage:  StorageConfig{Backend: "local", MediaRoot: "media"},
			Log:      LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: true},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: true},
		{name: "zero expiry", mutate: func(c *Config) { c.JWT.ExpirationDays = 0 }, wantErr: true},
		{name: "rsa algorithm", mutate: func(c *Config) { c.JWT.Algorithm = "RS256" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Storage.Backend = "s3" }, wantErr: true},
		{
			name: "s3 complete",
			mutate: func(c *Config) {
				c.Storage.Backend = "s3"
				c.Storage.S3 = S3Config{Bucket: "b", AccessKeyID: "id", SecretAccessKey: "key"}
			},
		},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
