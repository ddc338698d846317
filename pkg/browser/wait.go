package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// WaitFor waits until the identified element reaches the requested state
// (visible by default).
func (b *Browser) WaitFor(opts WaitOptions) error {
	if opts.Locator == nil {
		return fmt.Errorf("locator is required")
	}
	if opts.State == "" {
		opts.State = "visible"
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()

		state := playwright.WaitForSelectorState(opts.State)
		waitOpts := playwright.LocatorWaitForOptions{
			State:   &state,
			Timeout: &opts.Timeout,
		}
		if err := opts.Locator.WaitFor(waitOpts); err != nil {
			return fmt.Errorf("wait failed: %w", err)
		}
		return nil
	})
}
