package browser

import "fmt"

// Browser is the public facade over the serialized execution core. Every
// method extracts its parameters, builds one operation closure, and submits
// it; the closure is the only code that touches the Session. A Browser is
// safe for concurrent use by any number of goroutines.
type Browser struct {
	dispatcher *Dispatcher
}

// NewBrowser wraps an existing dispatcher. The dispatcher is typically the
// process-wide one returned by Acquire, but tests and embedders may supply
// their own from NewDispatcher.
func NewBrowser(dispatcher *Dispatcher) *Browser {
	return &Browser{dispatcher: dispatcher}
}

// Launch acquires the process-wide session and returns a Browser over it.
func Launch(opts SessionOptions) (*Browser, error) {
	dispatcher, err := Acquire(opts)
	if err != nil {
		return nil, err
	}
	return NewBrowser(dispatcher), nil
}

// Metadata returns the current page title and URL.
func (b *Browser) Metadata() (map[string]string, error) {
	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		return s.metadata()
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]string), nil
}

// CurrentURL returns the URL of the active page.
func (b *Browser) CurrentURL() (string, error) {
	value, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		s.UpdateLastUsed()
		return s.Page.URL(), nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// Close shuts down the browser, context, page, and driver. Teardown is just
// another serialized operation, so any work submitted before Close completes
// first.
func (b *Browser) Close() error {
	_, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		s.close()
		return nil, nil
	})
	return err
}

// submitErr runs an operation that produces no value and returns its error.
func (b *Browser) submitErr(op func(s *Session) error) error {
	if op == nil {
		return fmt.Errorf("browser: missing operation")
	}
	_, err := b.dispatcher.Submit(func(s *Session) (interface{}, error) {
		return nil, op(s)
	})
	return err
}
