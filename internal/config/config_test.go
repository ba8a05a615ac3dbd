package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *Config {
	return &Config{
		JWTSecret:  "your-secret-key-change-in-production",
		Port:       "8480",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "user",
		DBPassword: "password",
		DBName:     "murmur",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	cfg := devConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRequiresDatabaseTarget(t *testing.T) {
	cfg := devConfig()
	cfg.DBName = ""
	cfg.DatabaseURL = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL or DB_HOST/DB_NAME")

	// An explicit DATABASE_URL satisfies the requirement on its own.
	cfg.DatabaseURL = "host=db port=5432 user=u password=p dbname=murmur sslmode=require"
	require.NoError(t, cfg.Validate())
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := devConfig()
	cfg.JWTSecret = ""
	require.Error(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultSecret(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "production"
	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "this-is-a-sufficiently-long-production-secret"
	cfg.DBPassword = "s3cure-pass"
	require.NoError(t, cfg.Validate())
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	cfg := devConfig()
	assert.Equal(t,
		"host=localhost port=5432 user=user password=password dbname=murmur sslmode=disable",
		cfg.DSN())

	cfg.DatabaseURL = "host=db dbname=other"
	assert.Equal(t, "host=db dbname=other", cfg.DSN())
}
