// internal/timing/manual.go
package timing

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler for tests. Nothing fires until the
// test advances virtual time with Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending []*manualEntry
}

type manualEntry struct {
	id       int
	due      time.Duration
	interval time.Duration // 0 => one-shot
	fn       func()
	stopped  bool
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual { return &Manual{} }

// Schedule registers fn to run once when virtual time reaches now+delay.
func (m *Manual) Schedule(delay time.Duration, fn func()) CancelFunc {
	return m.add(delay, 0, fn)
}

// Every registers fn to run at every interval of virtual time.
func (m *Manual) Every(interval time.Duration, fn func()) CancelFunc {
	return m.add(interval, interval, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e := &manualEntry{id: m.nextID, due: m.now + delay, interval: interval, fn: fn}
	m.pending = append(m.pending, e)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if e.stopped {
			return false
		}
		e.stopped = true
		return true
	}
}

// Advance moves virtual time forward, firing due callbacks in order. Repeating
// entries re-arm themselves; callbacks may schedule further work.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.due
		if e.interval > 0 {
			e.due += e.interval
		} else {
			e.stopped = true
		}
		fn := e.fn
		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}
	m.now = target
	m.compact()
	m.mu.Unlock()
}

// Pending reports how many live callbacks are registered.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.pending {
		if !e.stopped {
			n++
		}
	}
	return n
}

// nextDue returns the earliest non-stopped entry due at or before target.
// Assumes lock is held.
func (m *Manual) nextDue(target time.Duration) *manualEntry {
	sort.SliceStable(m.pending, func(i, j int) bool { return m.pending[i].due < m.pending[j].due })
	for _, e := range m.pending {
		if e.stopped {
			continue
		}
		if e.due <= target {
			return e
		}
		break
	}
	return nil
}

// compact drops stopped entries. Assumes lock is held.
func (m *Manual) compact() {
	live := m.pending[:0]
	for _, e := range m.pending {
		if !e.stopped {
			live = append(live, e)
		}
	}
	m.pending = live
}
