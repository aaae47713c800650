package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeFile_ThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animalbase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
source: data/animals.json
watch_source: true
log_format: json
`), 0o600))

	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "data/animals.json", cfg.Source)
	require.True(t, cfg.WatchSource)
	require.Equal(t, "json", cfg.LogFormat)

	env := map[string]string{
		"PORT":           "7070",
		"ANIMALS_SOURCE": "https://example.test/animals.json",
		"WATCH_SOURCE":   "false",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, ":7070", cfg.Addr())
	require.Equal(t, "https://example.test/animals.json", cfg.Source)
	require.False(t, cfg.WatchSource)
	require.Equal(t, "animalbase", cfg.AppName)
}

func TestMergeFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))

	cfg := Default()
	require.Error(t, cfg.mergeFile(path))
}
