package app

import "sync"

// Window is one digest period of poller activity.
type Window struct {
	Cycles           int
	Notifications    int
	Failures         int
	SuppressedErrors int
}

// Stats accumulates poller activity for the daily digest. The poller
// goroutine and the cron goroutine both touch it, hence the mutex.
type Stats struct {
	mu     sync.Mutex
	window Window
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) CycleDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.Cycles++
}

func (s *Stats) NotificationSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.Notifications++
}

func (s *Stats) CycleFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.Failures++
}

func (s *Stats) ErrorSuppressed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.SuppressedErrors++
}

// TakeWindow returns the accumulated counters and starts a fresh window.
func (s *Stats) TakeWindow() Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.window
	s.window = Window{}
	return w
}
