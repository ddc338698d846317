package browser

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession builds a dispatcher whose worker owns an empty Session, so the
// core can be exercised without a real driver.
func stubSession() (*Session, error) {
	return &Session{CreatedAt: time.Now()}, nil
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	dispatcher, err := NewDispatcher(stubSession)
	require.NoError(t, err)
	return dispatcher
}

func TestDispatcher_SubmitReturnsValue(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	value, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestDispatcher_SubmitForwardsFailureUnchanged(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	boom := errors.New("boom")
	value, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
		return nil, boom
	})
	assert.Nil(t, value)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "boom", err.Error())

	// A failure never takes the worker down with it.
	value, err = dispatcher.Submit(func(s *Session) (interface{}, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestDispatcher_NilOperationFailsFast(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	value, err := dispatcher.Submit(nil)
	assert.Nil(t, value)
	assert.ErrorIs(t, err, ErrNilOperation)

	// Nothing was enqueued.
	assert.Equal(t, 0, dispatcher.Pending())
}

func TestDispatcher_PanicBecomesError(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	_, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
		panic("driver blew up")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation panic")
	assert.Contains(t, err.Error(), "driver blew up")

	value, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
		return "still alive", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "still alive", value)
}

func TestDispatcher_SerializesConcurrentSubmits(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	const callers = 16

	var active int32
	var maxActive int32

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
				n := atomic.AddInt32(&active, 1)
				for {
					seen := atomic.LoadInt32(&maxActive)
					if n <= seen || atomic.CompareAndSwapInt32(&maxActive, seen, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive),
		"no two operations may execute concurrently")
}

func TestDispatcher_ExecutesInEnqueueOrder(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	// Hold the worker inside a gate operation so later submissions pile up
	// in the mailbox in a known order.
	gate := make(chan struct{})
	gateDone := make(chan struct{})
	go func() {
		_, _ = dispatcher.Submit(func(s *Session) (interface{}, error) {
			<-gate
			return nil, nil
		})
		close(gateDone)
	}()

	// Wait until the worker has dequeued the gate task.
	require.Eventually(t, func() bool {
		return dispatcher.Pending() == 0
	}, time.Second, time.Millisecond)

	const tasks = 5
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
				order = append(order, i) // worker-only write, no lock needed
				return nil, nil
			})
			assert.NoError(t, err)
		}()

		// Ensure task i is enqueued before launching task i+1.
		require.Eventually(t, func() bool {
			return dispatcher.Pending() == i+1
		}, time.Second, time.Millisecond)
	}

	close(gate)
	wg.Wait()
	<-gateDone

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestDispatcher_ConcurrentCallersAreIsolated(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	const callers = 32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := dispatcher.Submit(func(s *Session) (interface{}, error) {
				return i, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, i, value, "caller %d received another caller's reply", i)
		}()
	}
	wg.Wait()
}

func TestNewDispatcher_SessionConstructionFailure(t *testing.T) {
	launchErr := fmt.Errorf("no browser available")

	dispatcher, err := NewDispatcher(func() (*Session, error) {
		return nil, launchErr
	})
	assert.Nil(t, dispatcher)
	assert.ErrorIs(t, err, launchErr)
}
