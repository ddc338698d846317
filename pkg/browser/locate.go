package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Locate resolves an element using exactly one of the supported strategies
// (CSS selector, ARIA role with optional accessible name, or label text) and
// returns its locator. Locators are lazy handles: every action taken on one
// later still runs through the serialized worker.
func (b *Browser) Locate(opts LocateOptions) (playwright.Locator, error) {
	strategies := 0
	if opts.Selector != "" {
		strategies++
	}
	if opts.Role != "" {
		strategies++
	}
	if opts.Label != "" {
		strategies++
	}
	if strategies == 0 {
		return nil, fmt.Errorf("must provide one locator strategy (selector, role, or label)")
	}
	if strategies > 1 {
		return nil, fmt.Errorf("locator strategies are mutually exclusive (selector, role, label)")
	}
	if opts.Name != "" && opts.Role == "" {
		return nil, fmt.Errorf("name requires role")
	}

	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		return s.locate(opts)
	})
	if err != nil {
		return nil, err
	}
	return value.(playwright.Locator), nil
}

// locate runs on the worker goroutine.
func (s *Session) locate(opts LocateOptions) (playwright.Locator, error) {
	s.UpdateLastUsed()

	switch {
	case opts.Selector != "":
		return s.Page.Locator(opts.Selector), nil

	case opts.Role != "":
		roleOpts := playwright.PageGetByRoleOptions{}
		if opts.Name != "" {
			roleOpts.Name = opts.Name
		}
		return s.Page.GetByRole(playwright.AriaRole(opts.Role), roleOpts), nil

	case opts.Label != "":
		return s.Page.GetByLabel(opts.Label), nil

	default:
		return nil, fmt.Errorf("must provide one locator strategy (selector, role, or label)")
	}
}
