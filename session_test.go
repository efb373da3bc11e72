package smartface

import "testing"

func TestCaptureSessionLifecycle(t *testing.T) {

	cfg := DefaultCaptureConfig()
	cfg.MaxCaptures = 3

	s := NewCaptureSession(cfg)

	if s.State() != Accepting {
		t.Errorf("new session should be Accepting")
	}

	if s.Remaining() != 3 {
		t.Errorf("expected 3 remaining, got %d", s.Remaining())
	}

	for i := 0; i < 3; i++ {
		s.Increment()
	}

	if s.State() != Exhausted {
		t.Errorf("session should be Exhausted after 3 captures")
	}

	if s.Count() != 3 {
		t.Errorf("expected count 3, got %d", s.Count())
	}

	// the counter is bounded, further increments are no-ops
	s.Increment()
	s.Increment()

	if s.Count() != 3 {
		t.Errorf("counter moved past quota, got %d", s.Count())
	}

	if s.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", s.Remaining())
	}

	// only an explicit reset returns the session to Accepting
	s.Reset()

	if s.State() != Accepting || s.Count() != 0 {
		t.Errorf("reset did not clear session, count=%d", s.Count())
	}
}

func TestCaptureSessionStatus(t *testing.T) {

	cfg := DefaultCaptureConfig()
	cfg.MaxCaptures = 5

	s := NewCaptureSession(cfg)
	s.Increment()
	s.Increment()

	if got := s.Status(); got != "Captured: 2/5" {
		t.Errorf("expected status \"Captured: 2/5\", got %q", got)
	}
}
