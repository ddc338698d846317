// Package config loads and validates the YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full run configuration for a documentation run.
type Config struct {
	// Browser configures the automation session
	Browser BrowserConfig `yaml:"browser"`

	// LLM configures the text-generation provider
	LLM LLMConfig `yaml:"llm"`

	// Fetch configures template downloading
	Fetch FetchConfig `yaml:"fetch"`

	// Workflow configures the documentation run itself
	Workflow WorkflowConfig `yaml:"workflow"`
}

// BrowserConfig configures the automation session.
type BrowserConfig struct {
	// Headless runs the browser without a visible window
	Headless bool `yaml:"headless"`

	// StartURL is opened when the session launches
	StartURL string `yaml:"start_url"`

	// ViewportWidth and ViewportHeight size the browser window
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`

	// TimeoutMs is the default driver operation timeout in milliseconds
	TimeoutMs float64 `yaml:"timeout_ms"`

	// SkipInstall skips the Playwright driver download check
	SkipInstall bool `yaml:"skip_install"`
}

// LLMConfig configures the text-generation provider.
type LLMConfig struct {
	// Model names the completion model
	Model string `yaml:"model"`

	// BaseURL overrides the API endpoint for OpenAI-compatible services
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env"`
}

// FetchConfig configures template downloading.
type FetchConfig struct {
	// AllowedHosts are glob patterns for hosts templates may be fetched
	// from; empty allows any host
	AllowedHosts []string `yaml:"allowed_hosts"`
}

// WorkflowConfig configures the documentation run.
type WorkflowConfig struct {
	// GalleryURL is the component gallery page to open
	GalleryURL string `yaml:"gallery_url"`

	// Category is the component category to document
	Category string `yaml:"category"`

	// TemplateURL points at the README template to follow
	TemplateURL string `yaml:"template_url"`

	// OutputPath is where the generated README is written
	OutputPath string `yaml:"output_path"`

	// ScreenshotDir holds component screenshots captured during the run
	ScreenshotDir string `yaml:"screenshot_dir"`

	// EndpointMarker is the substring identifying the component API
	// request in the page's network traffic
	EndpointMarker string `yaml:"endpoint_marker"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or inconsistent values
// and fills in defaults for optional fields.
func (c *Config) Validate() error {
	if c.Workflow.GalleryURL == "" {
		return fmt.Errorf("workflow gallery_url is required")
	}

	if c.Workflow.Category == "" {
		return fmt.Errorf("workflow category is required")
	}

	if c.Workflow.TemplateURL == "" {
		return fmt.Errorf("workflow template_url is required")
	}

	if c.Browser.TimeoutMs < 0 {
		return fmt.Errorf("browser timeout_ms cannot be negative")
	}

	if c.Browser.ViewportWidth < 0 || c.Browser.ViewportHeight < 0 {
		return fmt.Errorf("browser viewport dimensions cannot be negative")
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o"
	}

	if c.Workflow.OutputPath == "" {
		c.Workflow.OutputPath = "README.md"
	}

	if c.Workflow.ScreenshotDir == "" {
		c.Workflow.ScreenshotDir = "screenshots"
	}

	if c.Workflow.EndpointMarker == "" {
		c.Workflow.EndpointMarker = "components/?"
	}

	return nil
}

// DefaultConfig returns a configuration suitable for most runs.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:       true,
			ViewportWidth:  1280,
			ViewportHeight: 720,
			TimeoutMs:      30000,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Fetch: FetchConfig{
			AllowedHosts: []string{"raw.githubusercontent.com"},
		},
		Workflow: WorkflowConfig{
			OutputPath:     "README.md",
			ScreenshotDir:  "screenshots",
			EndpointMarker: "components/?",
		},
	}
}

// APIKey resolves the provider API key from the configured environment
// variable.
func (c *LLMConfig) APIKey() string {
	env := c.APIKeyEnv
	if env == "" {
		env = "OPENAI_API_KEY"
	}
	return os.Getenv(env)
}
