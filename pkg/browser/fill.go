package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Fill fills the identified input element with text. When Sequential is set
// the text is typed key by key with the configured delay, which some
// autocomplete widgets require.
func (b *Browser) Fill(opts FillOptions) error {
	if opts.Locator == nil {
		return fmt.Errorf("locator is required")
	}

	return b.submitErr(func(s *Session) error {
		return s.fill(opts)
	})
}

// fill runs on the worker goroutine.
func (s *Session) fill(opts FillOptions) error {
	s.UpdateLastUsed()

	if opts.Sequential {
		seqOpts := playwright.LocatorPressSequentiallyOptions{}
		if opts.Delay > 0 {
			seqOpts.Delay = &opts.Delay
		}
		if err := opts.Locator.PressSequentially(opts.Text, seqOpts); err != nil {
			return fmt.Errorf("sequential fill failed: %w", err)
		}
		return nil
	}

	if err := opts.Locator.Fill(opts.Text); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	return nil
}

// Press presses a key on the identified element, or globally on the page when
// no locator is given.
func (b *Browser) Press(opts PressOptions) error {
	if opts.Key == "" {
		return fmt.Errorf("key is required")
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()

		if opts.Locator != nil {
			if err := opts.Locator.Press(opts.Key); err != nil {
				return fmt.Errorf("key press failed: %w", err)
			}
			return nil
		}

		if err := s.Page.Keyboard().Press(opts.Key); err != nil {
			return fmt.Errorf("key press failed: %w", err)
		}
		return nil
	})
}

// Focus focuses the identified element.
func (b *Browser) Focus(locator playwright.Locator) error {
	if locator == nil {
		return fmt.Errorf("locator is required")
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()
		if err := locator.Focus(); err != nil {
			return fmt.Errorf("focus failed: %w", err)
		}
		return nil
	})
}
