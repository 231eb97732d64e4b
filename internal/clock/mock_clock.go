package clock

import (
	"sync"
	"time"
)

// MockClock allows manual control of time for testing. Timers created via
// After fire when Advance moves the clock past their deadline.
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*mockWaiter
	tickers []*MockTicker
}

type mockWaiter struct {
	deadline time.Time
	ch       chan time.Time
	fired    bool
}

// NewMockClock creates a MockClock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	w := &mockWaiter{
		deadline: c.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	if d <= 0 {
		w.ch <- c.now
		w.fired = true
	}
	c.waiters = append(c.waiters, w)
	return w.ch
}

func (c *MockClock) NewTicker(d time.Duration) Ticker {
	t := &MockTicker{
		ch:     make(chan time.Time, 100),
		clock:  c,
		period: d,
	}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Advance moves the clock forward by d, firing any due timers and tickers.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	waiters := append([]*mockWaiter(nil), c.waiters...)
	tickers := append([]*MockTicker(nil), c.tickers...)
	c.mu.Unlock()

	for _, w := range waiters {
		c.mu.Lock()
		due := !w.fired && !now.Before(w.deadline)
		if due {
			w.fired = true
		}
		c.mu.Unlock()
		if due {
			w.ch <- now
		}
	}
	for _, t := range tickers {
		t.tickIfDue(now)
	}
}

// MockTicker implements Ticker for MockClock.
type MockTicker struct {
	ch      chan time.Time
	clock   *MockClock
	period  time.Duration
	last    time.Time
	stopped bool
	mu      sync.Mutex
}

func (t *MockTicker) C() <-chan time.Time { return t.ch }

func (t *MockTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.ch)
}

func (t *MockTicker) tickIfDue(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if t.last.IsZero() {
		t.last = now.Add(-t.period)
	}
	for !t.last.Add(t.period).After(now) {
		t.last = t.last.Add(t.period)
		select {
		case t.ch <- t.last:
		default:
		}
	}
}
