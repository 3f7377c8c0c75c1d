package booking

import (
	"sync"
	"time"
)

// slotLocks holds a mutex per (trainer, calendar day) pair. Holding the pair's
// mutex across the availability re-check and the store write closes the
// check-then-act window where two near-simultaneous creates for the same slot
// could both pass the check.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the mutex for the given key, creating it on first use, and
// returns the matching unlock.
func (l *slotLocks) acquire(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, exists := l.locks[key]
	if !exists {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func slotKey(trainerID string, date time.Time) string {
	return trainerID + "@" + date.Format("2006-01-02")
}
