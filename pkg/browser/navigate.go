package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Navigate navigates the active page to the specified URL.
func (b *Browser) Navigate(url string, opts NavigateOptions) error {
	if url == "" {
		return fmt.Errorf("url is required")
	}

	return b.submitErr(func(s *Session) error {
		return s.navigate(url, opts)
	})
}

// navigate runs on the worker goroutine.
func (s *Session) navigate(url string, opts NavigateOptions) error {
	s.UpdateLastUsed()

	gotoOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		gotoOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		gotoOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.Goto(url, gotoOpts); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}
