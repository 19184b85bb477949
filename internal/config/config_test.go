package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volunteer_connect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath_Valid(t *testing.T) {
	path := writeConfig(t, `
storeBackend: file
storePath: /var/lib/vc/store
sessionFile: /var/lib/vc/session.json
pollIntervalMs: 500
seedSchedule: "FREQ=WEEKLY;BYDAY=SA"
tagOptions:
  - Environmental
  - Animal
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, "/var/lib/vc/store", cfg.StorePath)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, []string{"Environmental", "Animal"}, cfg.Tags())
}

func TestLoadFromPath_Defaults(t *testing.T) {
	path := writeConfig(t, `
storeBackend: file
storePath: /var/lib/vc/store
sessionFile: /var/lib/vc/session.json
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.PollInterval())
	assert.Equal(t, DefaultTagOptions, cfg.Tags())
}

func TestValidate_MissingBackend(t *testing.T) {
	err := Validate(&Config{SessionFile: "s.json"})
	assert.Error(t, err)
}

func TestValidate_UnknownBackend(t *testing.T) {
	err := Validate(&Config{StoreBackend: "redis", StorePath: "p", SessionFile: "s.json"})
	assert.Error(t, err)
}

func TestValidate_FileBackendNeedsPath(t *testing.T) {
	err := Validate(&Config{StoreBackend: "file", SessionFile: "s.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storePath")
}

func TestValidate_PostgresBackendNeedsDSN(t *testing.T) {
	err := Validate(&Config{StoreBackend: "postgres", SessionFile: "s.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storeDSN")
}

func TestValidate_BadSeedSchedule(t *testing.T) {
	err := Validate(&Config{
		StoreBackend: "file",
		StorePath:    "p",
		SessionFile:  "s.json",
		SeedSchedule: "FREQ=NOT_A_FREQ",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seedSchedule")
}

func TestValidate_PollIntervalTooSmall(t *testing.T) {
	err := Validate(&Config{
		StoreBackend:   "file",
		StorePath:      "p",
		SessionFile:    "s.json",
		PollIntervalMs: 10,
	})
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VC_STORE_BACKEND", "sqlite")
	t.Setenv("VC_STORE_PATH", "/tmp/override.db")

	path := writeConfig(t, `
storeBackend: file
storePath: /var/lib/vc/store
sessionFile: /var/lib/vc/session.json
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "/tmp/override.db", cfg.StorePath)
}
