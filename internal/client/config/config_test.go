package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"fyoffice"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000/api/", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "fyoffice.db", cfg.TokenDBPath)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("FYOFFICE_API_URL", "http://office.local/api/")
	t.Setenv("FYOFFICE_REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://office.local/api/", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "fyoffice.db", cfg.TokenDBPath)
}

func TestLoadConfig_JsonOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url":"http://json.local/api/","request_timeout":"3s"}`), 0o600))

	resetArgs(t, "-c", file)
	t.Setenv("FYOFFICE_API_URL", "http://env.local/api/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://json.local/api/", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url":"http://json.local/api/"}`), 0o600))

	resetArgs(t, "-c", file, "-a", "http://flag.local/api/", "-t", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag.local/api/", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_BadJsonFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{not json`), 0o600))

	resetArgs(t, "-c", file)

	_, err := LoadConfig()
	assert.Error(t, err)
}
