package smartface

import "fmt"

// SessionState represents the lifecycle state of a capture session
type SessionState int

const (
	// Accepting means the session still has capture quota remaining
	Accepting SessionState = iota
	// Exhausted means the capture quota has been used up.  The only way
	// back to Accepting is an explicit Reset by the session owner.
	Exhausted
)

// CaptureSession tracks how many captures have been taken against a
// configured quota.  A session is owned by the caller and must not be
// shared between independent capture sessions, each concurrent session
// needs its own instance.
type CaptureSession struct {
	maxCaptures int
	count       int
}

// NewCaptureSession creates a capture session with the quota taken from the
// given configuration
func NewCaptureSession(cfg CaptureConfig) *CaptureSession {
	return &CaptureSession{
		maxCaptures: cfg.MaxCaptures,
	}
}

// State returns the current lifecycle state of the session
func (s *CaptureSession) State() SessionState {

	if s.count >= s.maxCaptures {
		return Exhausted
	}

	return Accepting
}

// Count returns the number of captures taken so far
func (s *CaptureSession) Count() int {
	return s.count
}

// Remaining returns the number of captures left before the session is
// exhausted
func (s *CaptureSession) Remaining() int {

	if s.count >= s.maxCaptures {
		return 0
	}

	return s.maxCaptures - s.count
}

// Increment records an accepted capture.  It is a no-op on an exhausted
// session so the counter never exceeds the quota.  It is normally called by
// the capturer when a frame qualifies, not by the session owner.
func (s *CaptureSession) Increment() {

	if s.count >= s.maxCaptures {
		return
	}

	s.count++
}

// Reset returns an exhausted session to the Accepting state with a zero
// capture count
func (s *CaptureSession) Reset() {
	s.count = 0
}

// Status returns a human readable session status string, eg.
// "Captured: 2/5"
func (s *CaptureSession) Status() string {
	return fmt.Sprintf("Captured: %d/%d", s.count, s.maxCaptures)
}
