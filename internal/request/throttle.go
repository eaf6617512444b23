package request

import (
	"sync"
	"time"
)

const DefaultThrottleWindow = 2000 * time.Millisecond

// Throttle rejects submissions for a fixed window after the last completion.
type Throttle struct {
	mu          sync.Mutex
	window      time.Duration
	completedAt time.Time
	now         func() time.Time
}

func NewThrottle(window time.Duration) *Throttle {
	return &Throttle{
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether a submission may start now.
func (throttle *Throttle) Allow() bool {
	return throttle.Remaining() == 0
}

// Remaining is how long submissions stay rejected.
func (throttle *Throttle) Remaining() time.Duration {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()

	if throttle.completedAt.IsZero() {
		return 0
	}
	elapsed := throttle.now().Sub(throttle.completedAt)
	if elapsed >= throttle.window {
		return 0
	}
	return throttle.window - elapsed
}

// Complete starts the window. Call it when a call finishes, successfully or not.
func (throttle *Throttle) Complete() {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	throttle.completedAt = throttle.now()
}
