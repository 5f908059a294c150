package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petasbytes/library-agent/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, filepath.IsAbs(cfg.Library.Path) || cfg.Library.Path == "library.json")
	assert.Equal(t, "qwen2.5-coder", cfg.Model.Name)
	assert.Equal(t, "http://127.0.0.1:11434/v1", cfg.Model.BaseURL)
	assert.Equal(t, 8192, cfg.Model.ContextWindow)
	assert.Equal(t, 6, cfg.Agent.MaxSteps)
	assert.False(t, cfg.Agent.DeveloperMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_OverlaysYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
library:
  path: /tmp/custom/library.json
model:
  name: llama3.2
  context_window: 4096
agent:
  max_steps: 10
  developer_mode: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/library.json", cfg.Library.Path)
	assert.Equal(t, "llama3.2", cfg.Model.Name)
	assert.Equal(t, 4096, cfg.Model.ContextWindow)
	assert.Equal(t, 10, cfg.Agent.MaxSteps)
	assert.True(t, cfg.Agent.DeveloperMode)
	// Untouched fields keep their defaults.
	assert.Equal(t, "http://127.0.0.1:11434/v1", cfg.Model.BaseURL)
}

func TestLoad_EnvOverridesFileAndDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LIBRARY_AGENT_MODEL", "deepseek-coder")
	t.Setenv("LIBRARY_AGENT_BASE_URL", "http://10.0.0.5:8000/v1")
	t.Setenv("LIBRARY_AGENT_LIBRARY", "/tmp/env/library.json")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Model.APIKey)
	assert.Equal(t, "deepseek-coder", cfg.Model.Name)
	assert.Equal(t, "http://10.0.0.5:8000/v1", cfg.Model.BaseURL)
	assert.Equal(t, "/tmp/env/library.json", cfg.Library.Path)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
