package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api/matches", cfg.Server.BasePath)
	assert.Equal(t, 7*24*time.Hour, cfg.Match.InvitationTTL)
	assert.Equal(t, "@every 10m", cfg.Job.InvitationExpirySpec)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
database:
  url: postgres://file/db
match:
  invitation_ttl: 48h
redis:
  addr: localhost:6379
`), 0o600))

	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 48*time.Hour, cfg.Match.InvitationTTL)
	assert.Equal(t, "postgres://env/db", cfg.Database.GetDSN())
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non numeric port", "DB_PORT", "five"},
		{"bad ttl", "INVITATION_TTL", "seven days"},
		{"zero ttl", "INVITATION_TTL", "0s"},
		{"zero attempts", "RETRY_MAX_ATTEMPTS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_GetDSNFromFields(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "matches", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=matches sslmode=disable TimeZone=UTC", d.GetDSN())
}
