package listener

import "sync/atomic"

// Settings holds the process-wide state shared by every view listener.
// There is exactly one Settings per process; it is created at startup and
// handed to the Manager, which passes it on to each Listener.
type Settings struct {
	enabled atomic.Bool
}

// NewSettings creates Settings with path completion enabled or disabled.
func NewSettings(enabled bool) *Settings {
	s := &Settings{}
	s.enabled.Store(enabled)
	return s
}

// Enabled reports whether path completion is globally enabled.
func (s *Settings) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled sets the global flag.
func (s *Settings) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Toggle flips the global flag and returns the new value.
func (s *Settings) Toggle() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
