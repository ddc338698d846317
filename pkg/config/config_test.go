package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 1280, cfg.Browser.ViewportWidth)
	assert.Equal(t, 720, cfg.Browser.ViewportHeight)
	assert.Equal(t, float64(30000), cfg.Browser.TimeoutMs)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, "README.md", cfg.Workflow.OutputPath)
	assert.Equal(t, "screenshots", cfg.Workflow.ScreenshotDir)
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
browser:
  headless: false
  start_url: https://xircuits.io
  timeout_ms: 15000
llm:
  model: gpt-4o-mini
  base_url: https://llm.internal/v1
fetch:
  allowed_hosts:
    - "*.githubusercontent.com"
workflow:
  gallery_url: https://xircuits.io/library
  category: DATA PROCESSING
  template_url: https://raw.githubusercontent.com/acme/templates/main/README.md
  output_path: out/README.md
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "https://xircuits.io", cfg.Browser.StartURL)
	assert.Equal(t, float64(15000), cfg.Browser.TimeoutMs)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "https://llm.internal/v1", cfg.LLM.BaseURL)
	assert.Equal(t, []string{"*.githubusercontent.com"}, cfg.Fetch.AllowedHosts)
	assert.Equal(t, "DATA PROCESSING", cfg.Workflow.Category)
	assert.Equal(t, "out/README.md", cfg.Workflow.OutputPath)

	// Unset optional fields keep their defaults.
	assert.Equal(t, "screenshots", cfg.Workflow.ScreenshotDir)
	assert.Equal(t, 1280, cfg.Browser.ViewportWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "browser: [not: a: mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Workflow.GalleryURL = "https://xircuits.io/library"
		cfg.Workflow.Category = "AGENTS"
		cfg.Workflow.TemplateURL = "https://example.com/template.md"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing gallery url",
			mutate:  func(c *Config) { c.Workflow.GalleryURL = "" },
			wantErr: "gallery_url is required",
		},
		{
			name:    "missing category",
			mutate:  func(c *Config) { c.Workflow.Category = "" },
			wantErr: "category is required",
		},
		{
			name:    "missing template url",
			mutate:  func(c *Config) { c.Workflow.TemplateURL = "" },
			wantErr: "template_url is required",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Browser.TimeoutMs = -1 },
			wantErr: "timeout_ms cannot be negative",
		},
		{
			name:    "negative viewport",
			mutate:  func(c *Config) { c.Browser.ViewportWidth = -100 },
			wantErr: "viewport dimensions cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Workflow.GalleryURL = "https://xircuits.io/library"
	cfg.Workflow.Category = "AGENTS"
	cfg.Workflow.TemplateURL = "https://example.com/template.md"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "README.md", cfg.Workflow.OutputPath)
	assert.Equal(t, "screenshots", cfg.Workflow.ScreenshotDir)
	assert.Equal(t, "components/?", cfg.Workflow.EndpointMarker)
}

func TestAPIKey(t *testing.T) {
	t.Setenv("PAGESCRIBE_TEST_KEY", "sk-test-123")

	llm := LLMConfig{APIKeyEnv: "PAGESCRIBE_TEST_KEY"}
	assert.Equal(t, "sk-test-123", llm.APIKey())

	t.Setenv("OPENAI_API_KEY", "sk-default")
	llm = LLMConfig{}
	assert.Equal(t, "sk-default", llm.APIKey())
}
