// Package task tracks a single in-flight asynchronous action so the UI can
// disable only the control that started it.
package task

import (
	"errors"
	"sync"
)

// ErrBusy is returned by Begin while a previous run is still pending.
var ErrBusy = errors.New("task already pending")

// State is the observable lifecycle of a Task.
type State int

const (
	Idle State = iota
	Pending
	Completed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Task is a reusable handle for one kind of action. The zero value is idle
// and ready to use.
type Task[T any] struct {
	mu     sync.Mutex
	state  State
	result T
	runs   uint64
}

// Begin moves the task to pending and returns a run id to pass to Complete.
func (t *Task[T]) Begin() (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Pending {
		return 0, ErrBusy
	}
	t.runs++
	t.state = Pending
	var zero T
	t.result = zero
	return t.runs, nil
}

// Complete stores the result for run. A stale run id is ignored and reported
// as false.
func (t *Task[T]) Complete(run uint64, result T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Pending || run != t.runs {
		return false
	}
	t.state = Completed
	t.result = result
	return true
}

// Reset returns a completed task to idle. A pending task is left alone.
func (t *Task[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Pending {
		return
	}
	var zero T
	t.state = Idle
	t.result = zero
}

// State returns the current state.
func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Pending reports whether a run is in flight.
func (t *Task[T]) Pending() bool { return t.State() == Pending }

// Result returns the last completed result and whether one is available.
func (t *Task[T]) Result() (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.state == Completed
}
