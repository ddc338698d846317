package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// InnerText returns the rendered text of the first element matching the
// selector. The workflow uses this to read JSON API responses displayed as
// the page body.
func (b *Browser) InnerText(selector string) (string, error) {
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}

	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		s.UpdateLastUsed()
		text, err := s.Page.InnerText(selector)
		if err != nil {
			return nil, fmt.Errorf("inner text failed: %w", err)
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// Content returns the full HTML of the current page.
func (b *Browser) Content() (string, error) {
	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		s.UpdateLastUsed()
		html, err := s.Page.Content()
		if err != nil {
			return nil, fmt.Errorf("content failed: %w", err)
		}
		return html, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// ResolveHandle applies a JavaScript function to the first element matched by
// the locator and returns the resulting element handle. Typical use is
// walking to an ancestor, e.g. "node => node.closest('.card')".
func (b *Browser) ResolveHandle(opts HandleOptions) (playwright.ElementHandle, error) {
	if opts.Locator == nil {
		return nil, fmt.Errorf("locator is required")
	}
	if opts.Script == "" {
		return nil, fmt.Errorf("script is required")
	}

	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		return s.resolveHandle(opts)
	})
	if err != nil {
		return nil, err
	}
	return value.(playwright.ElementHandle), nil
}

// resolveHandle runs on the worker goroutine.
func (s *Session) resolveHandle(opts HandleOptions) (playwright.ElementHandle, error) {
	s.UpdateLastUsed()

	handle, err := opts.Locator.First().ElementHandle()
	if err != nil {
		return nil, fmt.Errorf("element handle lookup failed: %w", err)
	}
	if handle == nil {
		return nil, fmt.Errorf("element handle not found")
	}

	transformed, err := handle.EvaluateHandle(opts.Script)
	if err != nil {
		return nil, fmt.Errorf("handle transform failed: %w", err)
	}

	element := transformed.AsElement()
	if element == nil {
		return nil, fmt.Errorf("transformed handle is not an element")
	}
	return element, nil
}
