package alert

import (
	"sync"
	"time"
)

// History tracks when the last alert went out so repeated sends are held back
// for the cooldown period. The API seeds it from the newest alert_event row
// at startup, so restarts do not reset the cooldown.
type History struct {
	mu       sync.Mutex
	last     time.Time
	cooldown time.Duration
}

func NewHistory(cooldown time.Duration) *History {
	return &History{cooldown: cooldown}
}

// Seed sets the last-alert timestamp, typically from persisted history.
func (h *History) Seed(t time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = t
}

func (h *History) Record() {
	h.Seed(time.Now())
}

func (h *History) CanSend() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.last.IsZero() {
		return true
	}
	return time.Since(h.last) >= h.cooldown
}

// LastAlert returns the last alert time and whether one has been recorded.
func (h *History) LastAlert() (time.Time, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, !h.last.IsZero()
}

// TimeUntilNext returns the remaining cooldown, or false when sending is
// already allowed.
func (h *History) TimeUntilNext() (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.last.IsZero() {
		return 0, false
	}

	elapsed := time.Since(h.last)
	if elapsed >= h.cooldown {
		return 0, false
	}
	return h.cooldown - elapsed, true
}

func (h *History) Cooldown() time.Duration {
	return h.cooldown
}
