package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.Equal(t, 72*time.Hour, cfg.Scheduling.RescheduleTTL())
	assert.Equal(t, time.Hour, cfg.Scheduling.SweepInterval())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/scheduler.db
server:
  http_addr: ":9090"
scheduling:
  slot_step_minutes: 30
notification:
  workers: 4
`)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("RESCHEDULE_TTL_HOURS", "24")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/scheduler.db", cfg.Database.Path)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddr)
	assert.Equal(t, 30, cfg.Scheduling.SlotStepMinutes)
	assert.Equal(t, 24*time.Hour, cfg.Scheduling.RescheduleTTL())
	assert.Equal(t, 4, cfg.Notification.Workers)
	// не перекрытое файлом остаётся дефолтным
	assert.Equal(t, 256, cfg.Notification.QueueSize)
}

func TestLoad_BadEnvIntKeepsValue(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"sqlite without path", "database:\n  driver: sqlite\n"},
		{"non-positive step", "scheduling:\n  slot_step_minutes: 0\n"},
		{"broken yaml", "database: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
