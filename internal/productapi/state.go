package productapi

import (
	"sync/atomic"
	"time"
)

// AppState carries the process-level status reported by the probes.
type AppState struct {
	StartupTime time.Time

	ready atomic.Bool
}

// NewAppState marks the service ready from the start; nothing flips it in
// normal operation.
func NewAppState() *AppState {
	st := &AppState{StartupTime: time.Now()}
	st.ready.Store(true)
	return st
}

// Ready reports whether the service should accept traffic.
func (s *AppState) Ready() bool { return s.ready.Load() }

// SetReady flips the readiness flag.
func (s *AppState) SetReady(v bool) { s.ready.Store(v) }

// Uptime returns the time elapsed since startup.
func (s *AppState) Uptime() time.Duration { return time.Since(s.StartupTime) }
