package browser

import "sync"

var (
	// defaultDispatcher is the process-wide dispatcher guarding the one
	// Playwright session. Guarded by defaultMu rather than sync.Once so a
	// failed launch leaves it unset and a later Acquire can retry.
	defaultDispatcher *Dispatcher
	defaultMu         sync.Mutex

	// newDefaultSession is swapped out in tests to avoid launching a real
	// browser.
	newDefaultSession = newSession
)

// Acquire returns the process-wide Dispatcher, launching Playwright and the
// browser session on first use. Concurrent first callers are serialized:
// exactly one worker is ever created, and every caller receives a handle to
// the same one. If session construction fails, the error propagates to the
// caller that triggered it and the singleton remains unset.
//
// opts only takes effect on the call that performs the launch; later calls
// reuse the existing session regardless of the options they pass.
func Acquire(opts SessionOptions) (*Dispatcher, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultDispatcher != nil {
		return defaultDispatcher, nil
	}

	dispatcher, err := NewDispatcher(func() (*Session, error) {
		return newDefaultSession(opts)
	})
	if err != nil {
		return nil, err
	}

	defaultDispatcher = dispatcher
	return defaultDispatcher, nil
}
