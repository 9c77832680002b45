package canvas

import "sync"

// FrameScheduler coalesces view updates requested during a continuous
// gesture so that at most one is applied per rendered frame.
//
// Gesture handlers call Request on every pointer move; the renderer calls
// Take once per display refresh and applies the latest state only when it
// returns true.
type FrameScheduler struct {
	mu        sync.Mutex
	requested bool
	frames    uint64
}

// NewFrameScheduler returns an idle scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Request marks the view as stale. Repeated requests before the next frame
// collapse into one.
func (s *FrameScheduler) Request() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requested = true
}

// Take consumes the pending request, if any, and reports whether a frame
// should be rendered.
func (s *FrameScheduler) Take() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.requested {
		return false
	}
	s.requested = false
	s.frames++

	return true
}

// Cancel drops a pending request. It is used when the final state of a
// gesture is committed directly.
func (s *FrameScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requested = false
}

// Pending reports whether a frame has been requested but not taken yet.
func (s *FrameScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requested
}

// Frames returns the number of frames taken so far.
func (s *FrameScheduler) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frames
}
