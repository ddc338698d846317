package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Screenshot captures a screenshot of an element, or of the page when no
// locator is given, and writes it to opts.Path.
func (b *Browser) Screenshot(opts ScreenshotOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("path is required")
	}

	return b.submitErr(func(s *Session) error {
		return s.screenshot(opts)
	})
}

// screenshot runs on the worker goroutine.
func (s *Session) screenshot(opts ScreenshotOptions) error {
	s.UpdateLastUsed()

	if opts.Locator != nil {
		shotOpts := playwright.LocatorScreenshotOptions{Path: &opts.Path}
		if _, err := opts.Locator.Screenshot(shotOpts); err != nil {
			return fmt.Errorf("element screenshot failed: %w", err)
		}
		return nil
	}

	shotOpts := playwright.PageScreenshotOptions{
		Path:     &opts.Path,
		FullPage: &opts.FullPage,
	}
	if _, err := s.Page.Screenshot(shotOpts); err != nil {
		return fmt.Errorf("page screenshot failed: %w", err)
	}
	return nil
}
