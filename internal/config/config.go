// Package config holds the runtime configuration for the library agent.
//
// Everything that used to be a module-level constant in earlier
// prototypes (library path, model connection, step budget) is an
// explicit field here and flows into constructors.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Library LibraryConfig `yaml:"library"`
	Model   ModelConfig   `yaml:"model"`
	Agent   AgentConfig   `yaml:"agent"`
	Log     LogConfig     `yaml:"log"`
}

type LibraryConfig struct {
	Path string `yaml:"path"` // default "~/.library-agent/library.json"
}

// ModelConfig describes the OpenAI-compatible endpoint the external
// framework connects to. The agent itself never speaks the wire
// protocol; these four values are handed to the framework verbatim.
type ModelConfig struct {
	Name          string `yaml:"name"`           // default "qwen2.5-coder"
	BaseURL       string `yaml:"base_url"`       // default "http://127.0.0.1:11434/v1"
	APIKey        string `yaml:"api_key"`        // usually supplied via OPENAI_API_KEY
	ContextWindow int    `yaml:"context_window"` // default 8192
}

type AgentConfig struct {
	MaxSteps      int  `yaml:"max_steps"`      // default 6
	DeveloperMode bool `yaml:"developer_mode"` // default false
}

type LogConfig struct {
	Level string `yaml:"level"` // default "info"
}

// Default returns a Config populated with all default values.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Path: defaultLibraryPath(),
		},
		Model: ModelConfig{
			Name:          "qwen2.5-coder",
			BaseURL:       "http://127.0.0.1:11434/v1",
			APIKey:        os.Getenv("OPENAI_API_KEY"),
			ContextWindow: 8192,
		},
		Agent: AgentConfig{
			MaxSteps:      6,
			DeveloperMode: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (when
// path is non-empty) and then with environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays the small set of supported environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Model.APIKey = v
	}
	if v := os.Getenv("LIBRARY_AGENT_MODEL"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("LIBRARY_AGENT_BASE_URL"); v != "" {
		c.Model.BaseURL = v
	}
	if v := os.Getenv("LIBRARY_AGENT_LIBRARY"); v != "" {
		c.Library.Path = v
	}
}

// defaultLibraryPath resolves the default library file location. It
// uses os.UserHomeDir() + "/.library-agent/library.json", falling back
// to the working directory if the home directory cannot be determined.
func defaultLibraryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "library.json"
	}
	return filepath.Join(home, ".library-agent", "library.json")
}
