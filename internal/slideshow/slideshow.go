// Package slideshow rotates through the home page image list on a timer.
package slideshow

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between slides.
const DefaultInterval = 4 * time.Second

// State reports whether a timer is armed.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Ticker advances a rotation index over a list of n images. It is idle while
// the list has one image or fewer.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	index   int
	n       int
	gen     uint64
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	updates chan int
}

// New returns an idle Ticker. A non-positive interval uses DefaultInterval.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval, updates: make(chan int, 1)}
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Updates delivers the index after each tick. Only the latest value is kept;
// a slow reader sees the newest index, never a backlog.
func (t *Ticker) Updates() <-chan int { return t.updates }

// Index returns the current rotation index.
func (t *Ticker) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

// State reports whether a timer is armed.
func (t *Ticker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return Running
	}
	return Idle
}

// SetImages is called whenever the image list changes. It cancels the running
// timer, clamps the index into the new list and arms a fresh timer when there
// is more than one image.
func (t *Ticker) SetImages(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.disarmLocked()
	if n < 0 {
		n = 0
	}
	t.n = n
	t.index = Clamp(t.index, n)
	if n > 1 {
		t.armLocked()
	}
}

// Stop cancels the timer and waits for it to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	t.disarmLocked()
	t.mu.Unlock()
	t.wg.Wait()
}

// Advance moves to the next image, wrapping at the end of the list.
func (t *Ticker) Advance() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advanceLocked()
}

func (t *Ticker) advanceLocked() int {
	if t.n > 0 {
		t.index = (t.index + 1) % t.n
	}
	t.publishLocked(t.index)
	return t.index
}

func (t *Ticker) publishLocked(idx int) {
	select {
	case <-t.updates:
	default:
	}
	select {
	case t.updates <- idx:
	default:
	}
}

func (t *Ticker) disarmLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
	t.gen++
}

func (t *Ticker) armLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	gen := t.gen

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			t.mu.Lock()
			// A timer replaced between the tick and the lock must not advance.
			if gen != t.gen {
				t.mu.Unlock()
				return
			}
			t.advanceLocked()
			t.mu.Unlock()
		}
	}()
}

// Clamp returns index if it is within a list of n items, otherwise 0.
func Clamp(index, n int) int {
	if index < 0 || index >= n {
		return 0
	}
	return index
}
