package browser

import (
	"errors"
	"fmt"
)

// ErrNilOperation is returned by Submit when the operation is nil. The check
// happens in the caller's goroutine, before anything is enqueued, so an
// invalid submission never pollutes the serialized queue.
var ErrNilOperation = errors.New("browser: nil operation submitted")

// Operation is one unit of work executed against the owned Session. It runs
// on the worker goroutine and must not retain the Session beyond its return.
type Operation func(s *Session) (interface{}, error)

// result carries an operation's outcome through the reply slot. Failures are
// data here, not control flow: the worker recovers every failure locally and
// Submit re-surfaces it unchanged on the caller's side.
type result struct {
	value interface{}
	err   error
}

// Task pairs an operation with its single-use reply slot. A task is created,
// enqueued, executed, and discarded; the reply slot is written exactly once by
// the worker and read exactly once by the submitter.
type Task struct {
	op    Operation
	reply chan result
}

func newTask(op Operation) *Task {
	return &Task{
		op:    op,
		reply: make(chan result, 1), // buffered so the worker never blocks on delivery
	}
}

// worker owns the Session and is the only execution context that ever touches
// it. It drains the mailbox forever, alternating between idle (blocked in
// Take) and executing exactly one operation.
type worker struct {
	mailbox    *Mailbox
	newSession func() (*Session, error)
}

// run constructs the owned session on the worker goroutine, reports the
// construction outcome on ready, then enters the dispatch loop. The loop has
// no exit under normal operation; it ends only with the process.
func (w *worker) run(ready chan<- error) {
	session, err := w.newSession()
	ready <- err
	if err != nil {
		return
	}

	for {
		task := w.mailbox.Take()
		task.reply <- w.execute(task, session)
	}
}

// execute runs one operation and captures its outcome, converting panics into
// errors so a faulting operation cannot take the loop down with it.
func (w *worker) execute(task *Task, session *Session) (res result) {
	defer func() {
		if r := recover(); r != nil {
			res = result{err: fmt.Errorf("browser: operation panic: %v", r)}
		}
	}()

	value, err := task.op(session)
	return result{value: value, err: err}
}

// Dispatcher is the caller-facing handle to the serialized execution core. It
// is cheap to share: it holds nothing but a reference to the mailbox, and is
// valid for the lifetime of the worker.
type Dispatcher struct {
	mailbox *Mailbox
}

// NewDispatcher starts a dedicated worker goroutine that owns the session
// produced by newSession, and returns the handle callers use to reach it.
// newSession runs on the worker goroutine; if it fails, no worker is left
// behind and the error is returned here.
func NewDispatcher(newSession func() (*Session, error)) (*Dispatcher, error) {
	mailbox := NewMailbox()
	w := &worker{
		mailbox:    mailbox,
		newSession: newSession,
	}

	ready := make(chan error, 1)
	go w.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}

	return &Dispatcher{mailbox: mailbox}, nil
}

// Submit enqueues one task and blocks the calling goroutine until the worker
// has executed the operation, then returns the operation's value or its
// original error. Concurrent callers each get a private reply slot, so they
// can never observe each other's results.
//
// Once dequeued, an operation runs to completion; Submit offers no timeout or
// cancellation because an operation already in flight against the driver
// cannot be safely interrupted.
func (d *Dispatcher) Submit(op Operation) (interface{}, error) {
	if op == nil {
		return nil, ErrNilOperation
	}

	task := newTask(op)
	d.mailbox.Put(task)

	res := <-task.reply
	return res.value, res.err
}

// Pending returns the number of tasks waiting in the mailbox. Useful for
// logging queue depth; the value is stale the moment it is read.
func (d *Dispatcher) Pending() int {
	return d.mailbox.Len()
}
