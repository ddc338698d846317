package browser

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"
)

// Check checks a checkbox or radio element and verifies the resulting state.
// With AssertOnly set, the check action is skipped and only the assertion
// runs — useful for confirming state set by the page itself.
func (b *Browser) Check(opts CheckOptions) error {
	if opts.Locator == nil {
		return fmt.Errorf("locator is required")
	}

	return b.submitErr(func(s *Session) error {
		return s.check(opts)
	})
}

// check runs on the worker goroutine.
func (s *Session) check(opts CheckOptions) error {
	s.UpdateLastUsed()

	if !opts.AssertOnly {
		if err := opts.Locator.Check(); err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	}

	// Give the page a beat to settle before asserting.
	s.Page.WaitForTimeout(500)

	checked, err := opts.Locator.IsChecked()
	if err != nil {
		return fmt.Errorf("checked-state query failed: %w", err)
	}
	if !checked {
		return fmt.Errorf("element is not checked")
	}
	return nil
}

// Select selects option(s) from a <select> element. By chooses whether the
// values are matched against option values, labels, or indexes.
func (b *Browser) Select(opts SelectOptions) error {
	if opts.Locator == nil {
		return fmt.Errorf("locator is required")
	}
	if len(opts.Options) == 0 {
		return fmt.Errorf("at least one option is required")
	}

	values, err := buildSelectValues(opts)
	if err != nil {
		return err
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()
		if _, err := opts.Locator.SelectOption(values); err != nil {
			return fmt.Errorf("select failed: %w", err)
		}
		return nil
	})
}

// buildSelectValues converts the option list into the driver's union type.
// Happens in the caller's goroutine so malformed input fails fast.
func buildSelectValues(opts SelectOptions) (playwright.SelectOptionValues, error) {
	switch opts.By {
	case "", "value":
		return playwright.SelectOptionValues{Values: &opts.Options}, nil

	case "label":
		return playwright.SelectOptionValues{Labels: &opts.Options}, nil

	case "index":
		indexes := make([]int, 0, len(opts.Options))
		for _, raw := range opts.Options {
			idx, err := strconv.Atoi(raw)
			if err != nil {
				return playwright.SelectOptionValues{}, fmt.Errorf("invalid index %q: %w", raw, err)
			}
			indexes = append(indexes, idx)
		}
		return playwright.SelectOptionValues{Indexes: &indexes}, nil

	default:
		return playwright.SelectOptionValues{}, fmt.Errorf("invalid by: %s (must be 'value', 'label', or 'index')", opts.By)
	}
}

// Upload uploads file(s) to a file input element.
func (b *Browser) Upload(opts UploadOptions) error {
	if opts.Locator == nil {
		return fmt.Errorf("locator is required")
	}
	if len(opts.Files) == 0 {
		return fmt.Errorf("at least one file is required")
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()
		if err := opts.Locator.SetInputFiles(opts.Files); err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		return nil
	})
}
