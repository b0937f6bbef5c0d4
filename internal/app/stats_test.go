package app

import "testing"

func TestStatsTakeWindowResets(t *testing.T) {
	s := NewStats()
	s.CycleDone()
	s.CycleDone()
	s.NotificationSent()
	s.CycleFailed()
	s.ErrorSuppressed()

	w := s.TakeWindow()
	if w.Cycles != 2 || w.Notifications != 1 || w.Failures != 1 || w.SuppressedErrors != 1 {
		t.Fatalf("unexpected window: %+v", w)
	}

	if w = s.TakeWindow(); w != (Window{}) {
		t.Fatalf("expected empty window after take, got %+v", w)
	}
}
