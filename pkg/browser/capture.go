package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// CaptureEndpoint listens for finished network requests whose URL contains
// the given substring, optionally reloading the page to provoke them, and
// returns the first matching URL. An empty string means nothing matched
// within the settle window.
func (b *Browser) CaptureEndpoint(opts CaptureOptions) (string, error) {
	if opts.URLContains == "" {
		return "", fmt.Errorf("url substring is required")
	}
	if opts.SettleTimeout == 0 {
		opts.SettleTimeout = DefaultSettleTimeout
	}

	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		return s.captureEndpoint(opts)
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// captureEndpoint runs on the worker goroutine. The request handler fires on
// the driver's event goroutine, so the captured URL is mutex-guarded.
func (s *Session) captureEndpoint(opts CaptureOptions) (string, error) {
	s.UpdateLastUsed()

	var (
		mu       sync.Mutex
		captured string
	)

	handler := func(request playwright.Request) {
		mu.Lock()
		defer mu.Unlock()
		if captured == "" && strings.Contains(request.URL(), opts.URLContains) {
			captured = request.URL()
		}
	}

	s.Page.On("requestfinished", handler)
	defer s.Page.RemoveListener("requestfinished", handler)

	if opts.Reload {
		if _, err := s.Page.Reload(); err != nil {
			return "", fmt.Errorf("reload failed: %w", err)
		}
	}

	s.Page.WaitForTimeout(opts.SettleTimeout)

	mu.Lock()
	defer mu.Unlock()
	return captured, nil
}
