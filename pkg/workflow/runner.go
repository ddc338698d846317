// Package workflow orchestrates a full documentation run: drive the
// component gallery in a browser, recover the component catalog from the
// page's own API traffic, fetch the README template, capture showcase
// screenshots, and hand everything to the generator.
package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/xpressai/pagescribe/pkg/browser"
	"github.com/xpressai/pagescribe/pkg/catalog"
	"github.com/xpressai/pagescribe/pkg/config"
	"github.com/xpressai/pagescribe/pkg/extractor"
	"github.com/xpressai/pagescribe/pkg/logging"
)

// showcaseCount is how many components from the category get screenshots.
const showcaseCount = 2

// Driver is the subset of browser operations the runner needs. It is
// satisfied by *browser.Browser.
type Driver interface {
	Navigate(url string, opts browser.NavigateOptions) error
	CaptureEndpoint(opts browser.CaptureOptions) (string, error)
	InnerText(selector string) (string, error)
	Content() (string, error)
	Locate(opts browser.LocateOptions) (playwright.Locator, error)
	Screenshot(opts browser.ScreenshotOptions) error
}

// Fetcher downloads README templates. Satisfied by *catalog.TemplateFetcher.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Generator produces the README text. Satisfied by *docgen.Generator.
type Generator interface {
	GenerateToFile(ctx context.Context, payload *catalog.CategoryPayload, path string) (string, error)
}

// Runner executes the documentation workflow end to end.
type Runner struct {
	driver    Driver
	fetcher   Fetcher
	generator Generator
	cfg       config.WorkflowConfig
	log       *logging.Logger
}

// Report summarizes a completed run.
type Report struct {
	// EndpointURL is the catalog API request captured from the gallery
	EndpointURL string

	// Components is how many components matched the category
	Components int

	// ScreenshotPaths are the showcase screenshots that were captured
	ScreenshotPaths []string

	// Readme is the generated README text
	Readme string

	// OutputPath is where the README was written
	OutputPath string
}

// NewRunner wires a runner from its collaborators. A nil logger is
// replaced with a component logger.
func NewRunner(driver Driver, fetcher Fetcher, generator Generator, cfg config.WorkflowConfig, log *logging.Logger) (*Runner, error) {
	if driver == nil {
		return nil, fmt.Errorf("driver is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	if generator == nil {
		return nil, fmt.Errorf("generator is required")
	}

	if log == nil {
		log, _ = logging.NewLogger("workflow")
	}

	return &Runner{
		driver:    driver,
		fetcher:   fetcher,
		generator: generator,
		cfg:       cfg,
		log:       log,
	}, nil
}

// Run executes the full workflow and returns a report of what was
// produced.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.log.Infof("starting run: gallery=%s category=%s", r.cfg.GalleryURL, r.cfg.Category)

	if err := r.driver.Navigate(r.cfg.GalleryURL, browser.NavigateOptions{}); err != nil {
		return nil, fmt.Errorf("failed to open gallery: %w", err)
	}
	r.logPageSummary()

	endpoint, err := r.captureCatalogEndpoint()
	if err != nil {
		return nil, err
	}
	r.log.Infof("captured catalog endpoint: %s", endpoint)

	components, err := r.loadCategory(endpoint)
	if err != nil {
		return nil, err
	}
	r.log.Infof("category %q has %d components", r.cfg.Category, len(components))

	template, err := r.fetcher.Fetch(ctx, r.cfg.TemplateURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch readme template: %w", err)
	}

	screenshots := r.captureShowcase(components)

	payload := &catalog.CategoryPayload{
		CategoryInfo:    components,
		ReadmeTemplate:  template,
		ScreenshotLinks: screenshots,
	}

	readme, err := r.generator.GenerateToFile(ctx, payload, r.cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to generate readme: %w", err)
	}
	r.log.Infof("readme written to %s (%d bytes)", r.cfg.OutputPath, len(readme))

	return &Report{
		EndpointURL:     endpoint,
		Components:      len(components),
		ScreenshotPaths: screenshots,
		Readme:          readme,
		OutputPath:      r.cfg.OutputPath,
	}, nil
}

// logPageSummary records what the gallery page looks like, which is the
// first thing to check when a run captures nothing.
func (r *Runner) logPageSummary() {
	content, err := r.driver.Content()
	if err != nil {
		r.log.Debugf("could not read gallery content: %v", err)
		return
	}

	summary, err := extractor.Summarize(content)
	if err != nil {
		r.log.Debugf("could not summarize gallery page: %v", err)
		return
	}
	r.log.Debugf("gallery page: title=%q headings=%d links=%d", summary.Title, len(summary.Headings), len(summary.Links))
}

// captureCatalogEndpoint watches the gallery's network traffic for the
// component API request, reloading the page to provoke it.
func (r *Runner) captureCatalogEndpoint() (string, error) {
	endpoint, err := r.driver.CaptureEndpoint(browser.CaptureOptions{
		URLContains: r.cfg.EndpointMarker,
		Reload:      true,
	})
	if err != nil {
		return "", fmt.Errorf("endpoint capture failed: %w", err)
	}
	if endpoint == "" {
		return "", fmt.Errorf("no request matching %q observed on %s", r.cfg.EndpointMarker, r.cfg.GalleryURL)
	}
	return endpoint, nil
}

// loadCategory navigates to the captured API endpoint, reads the JSON
// body the browser renders, and filters it down to the target category.
func (r *Runner) loadCategory(endpoint string) ([]catalog.Component, error) {
	if err := r.driver.Navigate(endpoint, browser.NavigateOptions{}); err != nil {
		return nil, fmt.Errorf("failed to open catalog endpoint: %w", err)
	}

	raw, err := r.driver.InnerText("body")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	components, err := catalog.Flatten([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	filtered := catalog.FilterCategory(components, r.cfg.Category)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("category %q has no components (catalog had %d)", r.cfg.Category, len(components))
	}
	return filtered, nil
}

// captureShowcase returns to the gallery and screenshots the first few
// components of the category. Screenshot failures are logged and skipped
// so a missing card never aborts the run.
func (r *Runner) captureShowcase(components []catalog.Component) []string {
	if err := r.driver.Navigate(r.cfg.GalleryURL, browser.NavigateOptions{}); err != nil {
		r.log.Warnf("could not return to gallery for screenshots: %v", err)
		return nil
	}

	if err := os.MkdirAll(r.cfg.ScreenshotDir, 0750); err != nil {
		r.log.Warnf("could not create screenshot directory: %v", err)
		return nil
	}

	var paths []string
	for i, component := range components {
		if i >= showcaseCount {
			break
		}

		name := component.Task()
		if name == "" {
			continue
		}

		locator, err := r.driver.Locate(browser.LocateOptions{
			Selector: fmt.Sprintf("text=%s", name),
		})
		if err != nil {
			r.log.Warnf("could not locate component %q: %v", name, err)
			continue
		}

		path := filepath.Join(r.cfg.ScreenshotDir, slug(name)+".png")
		if err := r.driver.Screenshot(browser.ScreenshotOptions{Locator: locator, Path: path}); err != nil {
			r.log.Warnf("screenshot of %q failed: %v", name, err)
			continue
		}

		r.log.Debugf("captured screenshot %s", path)
		paths = append(paths, path)
	}
	return paths
}

// slug turns a component name into a safe file name.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "component"
	}
	return b.String()
}
