package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Click clicks an element, or a page coordinate when no locator is given.
// Supports single and double clicks.
func (b *Browser) Click(opts ClickOptions) error {
	if opts.Locator == nil && opts.Position == nil {
		return fmt.Errorf("either a locator or a position is required")
	}

	return b.submitErr(func(s *Session) error {
		return s.click(opts)
	})
}

// click runs on the worker goroutine.
func (s *Session) click(opts ClickOptions) error {
	s.UpdateLastUsed()

	// Coordinate click on the page itself.
	if opts.Locator == nil {
		if opts.DoubleClick {
			if err := s.Page.Mouse().Dblclick(opts.Position.X, opts.Position.Y); err != nil {
				return fmt.Errorf("double click failed: %w", err)
			}
		} else {
			if err := s.Page.Mouse().Click(opts.Position.X, opts.Position.Y); err != nil {
				return fmt.Errorf("click failed: %w", err)
			}
		}
		s.CurrentURL = s.Page.URL()
		return nil
	}

	var position *playwright.Position
	if opts.Position != nil {
		position = &playwright.Position{X: opts.Position.X, Y: opts.Position.Y}
	}

	if opts.DoubleClick {
		dblOpts := playwright.LocatorDblclickOptions{Position: position}
		if opts.Timeout > 0 {
			dblOpts.Timeout = &opts.Timeout
		}
		if err := opts.Locator.Dblclick(dblOpts); err != nil {
			return fmt.Errorf("double click failed: %w", err)
		}
	} else {
		clickOpts := playwright.LocatorClickOptions{Position: position}
		if opts.Timeout > 0 {
			clickOpts.Timeout = &opts.Timeout
		}
		if err := opts.Locator.Click(clickOpts); err != nil {
			return fmt.Errorf("click failed: %w", err)
		}
	}

	// The click may have triggered navigation.
	s.CurrentURL = s.Page.URL()
	return nil
}

// Hover hovers over the identified element.
func (b *Browser) Hover(locator playwright.Locator) error {
	if locator == nil {
		return fmt.Errorf("locator is required")
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()
		if err := locator.Hover(); err != nil {
			return fmt.Errorf("hover failed: %w", err)
		}
		return nil
	})
}

// DragAndDrop drags the source element onto the target element.
func (b *Browser) DragAndDrop(source, target playwright.Locator) error {
	if source == nil || target == nil {
		return fmt.Errorf("source and target locators are required")
	}

	return b.submitErr(func(s *Session) error {
		s.UpdateLastUsed()
		if err := source.DragTo(target); err != nil {
			return fmt.Errorf("drag and drop failed: %w", err)
		}
		return nil
	})
}
