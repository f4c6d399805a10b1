package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 16, cfg.Server.BodyLimitMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data/session", cfg.Session.Path)
	assert.False(t, cfg.Session.InMemory)
	assert.Equal(t, 8, cfg.Scanner.MinLength)
	assert.Equal(t, 50, cfg.Scanner.ManualThresholdMs)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "scan-reports", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Nil(t, cfg.Manifest.Columns)
}

func TestLoadConfig_FilesAndEnv(t *testing.T) {
	dir := t.TempDir()

	yaml := `
server:
  port: "9090"
manifest:
  columns:
    barcode:
      - [ean]
    boxNumber:
      - [pallet, box]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SESSION_PATH=/tmp/scan-session\n"), 0o644))
	t.Setenv("SESSION_PATH", "")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.Equal(t, "/tmp/scan-session", cfg.Session.Path)
	assert.Equal(t, [][]string{{"ean"}}, cfg.Manifest.Columns["barcode"])
	assert.Equal(t, [][]string{{"pallet", "box"}}, cfg.Manifest.Columns["boxnumber"])
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
