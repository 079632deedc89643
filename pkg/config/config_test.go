package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "content-api",
			Environment: "development",
		},
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			DBName:  "content_db",
			SSLMode: "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			CacheTTL: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  "access",
			RefreshSecret: "refresh",
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingAppName(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.Server.Port = port
		assert.Error(t, cfg.Validate(), "port %d should be rejected", port)
	}
}

func TestValidateRejectsMissingSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDefaultSecretsInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "production"
	cfg.JWT.AccessSecret = "your-access-secret-change-in-production"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroCacheTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.CacheTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "pw"
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=content_db sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestRedisAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
