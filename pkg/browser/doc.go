// Package browser provides web browser automation through Playwright, driven
// exclusively from a single dedicated worker goroutine.
//
// Playwright sessions must not be shared across goroutines: the driver keeps
// per-connection state that breaks when two callers touch it concurrently. The
// package therefore funnels every driver operation through a serialized
// execution core built from three pieces:
//
//  1. Task: one unit of work (an operation closure plus a single-use reply slot)
//  2. Mailbox: an unbounded, ordered, thread-safe queue of pending Tasks
//  3. Worker: the one goroutine that owns the Session and drains the Mailbox
//
// Callers never touch the Session directly. They hold a Dispatcher and call
// Submit, which enqueues a Task and blocks until the worker has executed the
// operation and deposited its value or failure into the reply slot. Any number
// of goroutines may call Submit concurrently; operations execute strictly in
// submission order, one at a time.
//
// # Session Lifecycle
//
// Exactly one worker (and its Session) exists per process. Acquire lazily
// launches it on first use and hands back the shared Dispatcher; if launching
// the browser fails, the singleton stays unset and a later Acquire retries.
// Teardown is itself just another submitted operation (Browser.Close).
//
// # Failure Semantics
//
// An operation that returns an error (or panics) never terminates the worker
// loop. The failure is captured, carried through the reply slot, and returned
// from Submit unchanged, so the caller sees exactly what a direct synchronous
// call would have produced. There is no cancellation of in-flight operations:
// a caller that stops waiting has only stopped waiting.
//
// # Example Usage
//
//	dispatcher, err := browser.Acquire(browser.SessionOptions{
//	    Headless: true,
//	    StartURL: "https://example.com",
//	})
//	if err != nil {
//	    return err
//	}
//
//	b := browser.NewBrowser(dispatcher)
//	if err := b.Navigate("https://example.com/docs", browser.NavigateOptions{}); err != nil {
//	    return err
//	}
//	text, err := b.InnerText("body")
package browser
