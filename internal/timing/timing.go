// internal/timing/timing.go
package timing

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Safe to call more than once; returns
// true if the callback had not fired yet.
type CancelFunc func() bool

// Scheduler abstracts timer creation so the auction engine and AI bidder can
// be driven by virtual time in tests instead of sleeping.
type Scheduler interface {
	// Schedule runs fn once after delay.
	Schedule(delay time.Duration, fn func()) CancelFunc
	// Every runs fn repeatedly at the given interval until cancelled.
	Every(interval time.Duration, fn func()) CancelFunc
}

// Real is the production Scheduler backed by time.AfterFunc and time.Ticker.
type Real struct{}

// NewReal returns the wall-clock scheduler.
func NewReal() *Real { return &Real{} }

// Schedule runs fn once after delay on a new timer.
func (r *Real) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() bool { return t.Stop() }
}

// Every runs fn on a ticker goroutine until the returned cancel is called.
func (r *Real) Every(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() bool {
		stopped := false
		once.Do(func() {
			close(done)
			stopped = true
		})
		return stopped
	}
}
