package slots

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// farFuture bounds RunAll
var farFuture = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

// steppedClock moves a clockwork.FakeClock from one due time to the next.
// clockwork fires AfterFunc callbacks on their own goroutines; steppedClock
// waits for each fired timer and then runs the callbacks on the caller's
// goroutine in scheduling order, so a spin driven by it is deterministic.
type steppedClock struct {
	*clockwork.FakeClock

	mu      sync.Mutex
	seq     int
	pending map[*steppedTimer]struct{}
}

type steppedTimer struct {
	clock *steppedClock
	inner clockwork.Timer // nil for callbacks due immediately
	fired chan struct{}
	at    time.Time
	seq   int
	f     func()
	done  bool
}

func newSteppedClock(start time.Time) *steppedClock {
	return &steppedClock{
		FakeClock: clockwork.NewFakeClockAt(start),
		pending:   make(map[*steppedTimer]struct{}),
	}
}

func (c *steppedClock) AfterFunc(d time.Duration, f func()) clockwork.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &steppedTimer{clock: c, f: f}
	c.arm(t, d)
	return t
}

// arm schedules t d from now. Caller holds c.mu.
func (c *steppedClock) arm(t *steppedTimer, d time.Duration) {
	c.seq++
	t.seq = c.seq
	t.done = false
	t.at = c.FakeClock.Now()
	t.inner = nil
	if d > 0 {
		t.at = t.at.Add(d)
		t.fired = make(chan struct{}, 1)
		fired := t.fired
		t.inner = c.FakeClock.AfterFunc(d, func() { fired <- struct{}{} })
	}
	c.pending[t] = struct{}{}
}

// Pending returns the number of armed callbacks
func (c *steppedClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Advance moves time forward by d, running every callback that falls due,
// including ones armed by earlier callbacks.
func (c *steppedClock) Advance(d time.Duration) {
	target := c.Now().Add(d)
	for {
		if _, ok := c.step(target); !ok {
			break
		}
	}
	if rest := target.Sub(c.Now()); rest > 0 {
		c.FakeClock.Advance(rest)
	}
}

// RunAll runs callbacks until none remain, jumping time to each due point.
// Returns the number of callbacks run.
func (c *steppedClock) RunAll() int {
	total := 0
	for {
		ran, ok := c.step(farFuture)
		if !ok {
			return total
		}
		total += ran
	}
}

// step advances to the earliest due time at or before target and runs what
// fell due there. ok is false when nothing was due.
func (c *steppedClock) step(target time.Time) (ran int, ok bool) {
	c.mu.Lock()
	var batch []*steppedTimer
	for t := range c.pending {
		switch {
		case t.at.After(target):
		case len(batch) == 0 || t.at.Before(batch[0].at):
			batch = append(batch[:0], t)
		case t.at.Equal(batch[0].at):
			batch = append(batch, t)
		}
	}
	if len(batch) == 0 {
		c.mu.Unlock()
		return 0, false
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].seq < batch[j].seq })
	fired := make([]chan struct{}, len(batch))
	callbacks := make([]func(), len(batch))
	for i, t := range batch {
		delete(c.pending, t)
		if t.inner != nil {
			fired[i] = t.fired
		}
		callbacks[i] = t.f
	}
	due, now := batch[0].at, c.FakeClock.Now()
	c.mu.Unlock()

	if due.After(now) {
		c.FakeClock.Advance(due.Sub(now))
	}

	for i, t := range batch {
		if fired[i] != nil {
			<-fired[i]
		}
		c.mu.Lock()
		skip := t.done
		t.done = true
		c.mu.Unlock()
		if !skip {
			callbacks[i]()
			ran++
		}
	}
	return ran, true
}

func (t *steppedTimer) Chan() <-chan time.Time { return nil }

func (t *steppedTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	if _, ok := c.pending[t]; ok {
		delete(c.pending, t)
		if t.inner != nil {
			t.inner.Stop()
		}
	}
	return true
}

func (t *steppedTimer) Reset(d time.Duration) bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	active := !t.done
	if _, ok := c.pending[t]; ok {
		delete(c.pending, t)
		if t.inner != nil {
			t.inner.Stop()
		}
	}
	c.arm(t, d)
	return active
}
