package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/othello/internal/model"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	c, err := LoadConfig(envMap(map[string]string{EnvConfig: path}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", c.ServerURL)
	assert.Equal(t, "text", c.Output)
	assert.Equal(t, model.DefaultBotStrategy, c.Bot)
	assert.Empty(t, c.Path)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":"http://file:1","output":"json","bot":"first"}`), 0o600))

	c, err := LoadConfig(envMap(map[string]string{EnvConfig: path}))
	require.NoError(t, err)
	assert.Equal(t, "http://file:1", c.ServerURL)
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, "first", c.Bot)
	assert.Equal(t, path, c.Path)

	c, err = LoadConfig(envMap(map[string]string{EnvConfig: path, EnvServer: "http://env:2"}))
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", c.ServerURL)
	assert.Equal(t, "json", c.Output)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := LoadConfig(envMap(map[string]string{EnvConfig: path}))
	assert.Error(t, err)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	c := DefaultConfig()
	c.ServerURL = "http://saved:3"

	written, err := c.Save(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	loaded, err := LoadConfig(envMap(map[string]string{EnvConfig: path}))
	require.NoError(t, err)
	assert.Equal(t, "http://saved:3", loaded.ServerURL)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())

	c.Output = "yaml"
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Bot = "minimax"
	assert.ErrorIs(t, c.Validate(), model.ErrUnknownStrategy)
}
