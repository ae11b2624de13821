package timeout

import (
	"sync"
	"time"
)

// Fake records scheduled callbacks so tests can fire them by hand
type Fake struct {
	mu    sync.Mutex
	calls []*FakeCall
}

// FakeCall is one recorded callback
type FakeCall struct {
	After   time.Duration
	fn      func()
	stopped bool
}

// Stop marks the call as stopped
func (c *FakeCall) Stop() bool {
	was := !c.stopped
	c.stopped = true
	return was
}

// Stopped reports whether the call was cancelled
func (c *FakeCall) Stopped() bool {
	return c.stopped
}

// Fire runs the callback
func (c *FakeCall) Fire() {
	c.fn()
}

// AfterFunc implements AfterFunc without starting a timer
func (f *Fake) AfterFunc(d time.Duration, fn func()) Stopper {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := &FakeCall{After: d, fn: fn}
	f.calls = append(f.calls, call)
	return call
}

// Calls returns every recorded callback in scheduling order
func (f *Fake) Calls() []*FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*FakeCall(nil), f.calls...)
}

// Last returns the most recently scheduled callback
func (f *Fake) Last() *FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}
