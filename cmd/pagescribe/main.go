// Package main provides the pagescribe command line tool. It drives a
// component gallery in a headless browser, recovers the component catalog
// from the page's API traffic, and generates a category README with an
// LLM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xpressai/pagescribe/pkg/browser"
	"github.com/xpressai/pagescribe/pkg/catalog"
	"github.com/xpressai/pagescribe/pkg/config"
	"github.com/xpressai/pagescribe/pkg/docgen"
	"github.com/xpressai/pagescribe/pkg/docgen/openai"
	"github.com/xpressai/pagescribe/pkg/logging"
	"github.com/xpressai/pagescribe/pkg/security/workspace"
	"github.com/xpressai/pagescribe/pkg/workflow"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	ConfigFile  string
	GalleryURL  string
	Category    string
	TemplateURL string
	OutputPath  string
	Workspace   string
	Model       string
	Headed      bool
	Timeout     time.Duration
	ShowVersion bool
}

func main() {
	cli := parseFlags()

	if cli.ShowVersion {
		fmt.Printf("pagescribe v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	if err := run(ctx, cli); err != nil {
		cancel()
		log.Printf("Run failed: %v", err)
		os.Exit(1)
	}
	cancel()
}

// parseFlags parses command line flags.
func parseFlags() *CLIConfig {
	cli := &CLIConfig{}

	flag.StringVar(&cli.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&cli.GalleryURL, "gallery", "", "Component gallery URL (required if no config file)")
	flag.StringVar(&cli.Category, "category", "", "Component category to document")
	flag.StringVar(&cli.TemplateURL, "template", "", "URL of the README template to follow")
	flag.StringVar(&cli.OutputPath, "output", "", "Where to write the generated README")
	flag.StringVar(&cli.Workspace, "workspace", ".", "Directory all outputs must stay within")
	flag.StringVar(&cli.Model, "model", "", "LLM model to use")
	flag.BoolVar(&cli.Headed, "headed", false, "Run the browser with a visible window")
	flag.DurationVar(&cli.Timeout, "timeout", 5*time.Minute, "Overall run timeout")
	flag.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pagescribe - README generator for component galleries\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pagescribe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Run with a config file\n")
		fmt.Fprintf(os.Stderr, "  pagescribe -config pagescribe.yaml\n\n")
		fmt.Fprintf(os.Stderr, "  # Run with inline flags\n")
		fmt.Fprintf(os.Stderr, "  pagescribe -gallery https://xircuits.io/library -category AGENTS \\\n")
		fmt.Fprintf(os.Stderr, "      -template https://raw.githubusercontent.com/acme/tmpl/main/README.md\n\n")
	}

	flag.Parse()
	return cli
}

func run(ctx context.Context, cli *CLIConfig) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Confine outputs to the workspace before anything runs.
	guard, err := workspace.NewGuard(cli.Workspace)
	if err != nil {
		return fmt.Errorf("failed to create workspace guard: %w", err)
	}
	if cfg.Workflow.OutputPath, err = guard.ValidatePath(cfg.Workflow.OutputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if cfg.Workflow.ScreenshotDir, err = guard.ValidatePath(cfg.Workflow.ScreenshotDir); err != nil {
		return fmt.Errorf("invalid screenshot directory: %w", err)
	}

	logger, logErr := logging.NewLogger("main")
	if logErr != nil {
		log.Printf("Warning: file logging unavailable: %v", logErr)
	}
	defer logger.Close()
	logger.Infof("pagescribe v%s starting, session %s", version, logger.SessionID())

	provider, err := buildProvider(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	generator, err := docgen.NewGenerator(provider)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	fetcher, err := catalog.NewTemplateFetcher(cfg.Fetch.AllowedHosts)
	if err != nil {
		return fmt.Errorf("failed to create template fetcher: %w", err)
	}

	if cli.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
		defer cancel()
	}

	log.Printf("Launching browser (headless=%v)...", cfg.Browser.Headless)
	driver, err := browser.Launch(browser.SessionOptions{
		Headless: cfg.Browser.Headless,
		StartURL: cfg.Browser.StartURL,
		Viewport: &browser.Viewport{
			Width:  cfg.Browser.ViewportWidth,
			Height: cfg.Browser.ViewportHeight,
		},
		Timeout:     cfg.Browser.TimeoutMs,
		SkipInstall: cfg.Browser.SkipInstall,
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		if closeErr := driver.Close(); closeErr != nil {
			logger.Warnf("browser close failed: %v", closeErr)
		}
	}()

	runner, err := workflow.NewRunner(driver, fetcher, generator, cfg.Workflow, logger)
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	log.Printf("Documenting category %q from %s", cfg.Workflow.Category, cfg.Workflow.GalleryURL)

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	log.Printf("Captured %d components, %d screenshots", report.Components, len(report.ScreenshotPaths))
	log.Printf("README written to %s", report.OutputPath)
	return nil
}

// loadConfig loads the run configuration from a file or assembles it from
// CLI flags. Flags override file values.
func loadConfig(cli *CLIConfig) (*config.Config, error) {
	var cfg *config.Config

	if cli.ConfigFile != "" {
		loaded, err := config.Load(cli.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if cli.GalleryURL != "" {
		cfg.Workflow.GalleryURL = cli.GalleryURL
	}
	if cli.Category != "" {
		cfg.Workflow.Category = cli.Category
	}
	if cli.TemplateURL != "" {
		cfg.Workflow.TemplateURL = cli.TemplateURL
	}
	if cli.OutputPath != "" {
		cfg.Workflow.OutputPath = cli.OutputPath
	}
	if cli.Model != "" {
		cfg.LLM.Model = cli.Model
	}
	if cli.Headed {
		cfg.Browser.Headless = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildProvider creates the OpenAI provider from the LLM configuration.
func buildProvider(cfg *config.Config) (*openai.Provider, error) {
	opts := []openai.ProviderOption{
		openai.WithModel(cfg.LLM.Model),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.LLM.BaseURL))
	}
	return openai.NewProvider(cfg.LLM.APIKey(), opts...)
}
