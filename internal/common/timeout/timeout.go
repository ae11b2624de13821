package timeout

import (
	"sync"
	"time"
)

// Stopper cancels a pending callback
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f to run after d
type AfterFunc func(d time.Duration, f func()) Stopper

// Scheduler runs one pending callback per key; scheduling a key again replaces its callback
type Scheduler struct {
	mu        sync.Mutex
	pending   map[string]*entry
	afterFunc AfterFunc
}

type entry struct {
	stopper Stopper
}

// New creates a scheduler; a nil afterFunc uses time.AfterFunc
func New(afterFunc AfterFunc) *Scheduler {
	if afterFunc == nil {
		afterFunc = func(d time.Duration, f func()) Stopper {
			return time.AfterFunc(d, f)
		}
	}

	return &Scheduler{
		pending:   make(map[string]*entry),
		afterFunc: afterFunc,
	}
}

// Schedule runs fn after d unless the key is scheduled again or cancelled first
func (s *Scheduler) Schedule(key string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.pending[key]; ok {
		old.stopper.Stop()
	}

	e := &entry{}
	s.pending[key] = e
	e.stopper = s.afterFunc(d, func() {
		s.mu.Lock()
		current, ok := s.pending[key]
		if !ok || current != e {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel drops a pending callback and reports whether one was pending
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pending[key]
	if !ok {
		return false
	}
	e.stopper.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether a callback is scheduled for key
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[key]
	return ok
}

// Stop cancels every pending callback
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.pending {
		e.stopper.Stop()
		delete(s.pending, key)
	}
}
