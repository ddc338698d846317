package browser

import "fmt"

// Scroll scrolls a specific element or the whole page. The default method
// adjusts scrollTop/scrollLeft via script; "scroll_into_view" requires a
// locator, "mouse_wheel" hovers the element first when one is given, and
// "page_evaluate" always scrolls the window.
func (b *Browser) Scroll(opts ScrollOptions) error {
	if opts.Method == "" {
		opts.Method = ScrollEvaluate
	}

	switch opts.Method {
	case ScrollIntoView:
		if opts.Locator == nil {
			return fmt.Errorf("%s requires a locator", ScrollIntoView)
		}
	case ScrollMouseWheel, ScrollEvaluate, ScrollPageEvaluate:
	default:
		return fmt.Errorf("unknown scrolling method: %s", opts.Method)
	}

	return b.submitErr(func(s *Session) error {
		return s.scroll(opts)
	})
}

// scroll runs on the worker goroutine.
func (s *Session) scroll(opts ScrollOptions) error {
	s.UpdateLastUsed()

	switch opts.Method {
	case ScrollIntoView:
		if err := opts.Locator.ScrollIntoViewIfNeeded(); err != nil {
			return fmt.Errorf("scroll into view failed: %w", err)
		}
		return nil

	case ScrollMouseWheel:
		if opts.Locator != nil {
			if err := opts.Locator.Hover(); err != nil {
				return fmt.Errorf("hover before wheel failed: %w", err)
			}
		}
		if err := s.Page.Mouse().Wheel(float64(opts.X), float64(opts.Y)); err != nil {
			return fmt.Errorf("mouse wheel failed: %w", err)
		}
		return nil

	case ScrollEvaluate:
		if opts.Locator != nil {
			script := fmt.Sprintf("e => { e.scrollTop += %d; e.scrollLeft += %d; }", opts.Y, opts.X)
			if _, err := opts.Locator.Evaluate(script, nil); err != nil {
				return fmt.Errorf("element scroll failed: %w", err)
			}
			return nil
		}
		fallthrough

	case ScrollPageEvaluate:
		script := fmt.Sprintf("window.scrollBy(%d, %d)", opts.X, opts.Y)
		if _, err := s.Page.Evaluate(script); err != nil {
			return fmt.Errorf("page scroll failed: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown scrolling method: %s", opts.Method)
	}
}
