package browser

import "sync"

// Mailbox is an unbounded FIFO queue of pending Tasks. Any number of
// goroutines may Put concurrently; the worker is the only caller of Take.
//
// The queue is deliberately unbounded: Put never blocks, so a submitter can
// never be starved by queue growth. Automation sessions are short-lived and
// low-volume, which keeps the growth risk theoretical.
type Mailbox struct {
	mu    sync.Mutex
	ready *sync.Cond
	tasks []*Task
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	m := &Mailbox{}
	m.ready = sync.NewCond(&m.mu)
	return m
}

// Put appends a task to the queue and wakes the worker if it is idle.
func (m *Mailbox) Put(task *Task) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = append(m.tasks, task)
	m.ready.Signal()
}

// Take removes and returns the earliest pending task, blocking until one is
// available. Insertion order is execution order; tasks are never reordered or
// dropped.
func (m *Mailbox) Take() *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.tasks) == 0 {
		m.ready.Wait()
	}

	task := m.tasks[0]
	m.tasks[0] = nil // release the reference
	m.tasks = m.tasks[1:]
	return task
}

// Len returns the number of pending tasks.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
