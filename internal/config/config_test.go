package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("REMINDER_HOUR", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 8, cfg.ReminderHour)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("APP_ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("JWT_EXPIRY", "soon")

	cfg := Load()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JWTSecret: strings.Repeat("s", 32), DBPassword: "pw", ReminderHour: 8}
	require.NoError(t, cfg.Validate())

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = strings.Repeat("s", 32)
	cfg.DBPassword = ""
	assert.Error(t, cfg.Validate())

	cfg.DatabaseURL = "postgres://localhost/advocate"
	assert.NoError(t, cfg.Validate())
}

func TestDSN_PrefersDatabaseURL(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://db/advocate", DBHost: "ignored"}
	assert.Equal(t, "postgres://db/advocate", cfg.DSN())

	cfg.DatabaseURL = ""
	assert.Contains(t, cfg.DSN(), "host=ignored")
}
