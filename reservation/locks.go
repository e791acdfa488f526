package reservation

import "sync"

// courtLocks hands out one mutex per court so that the conflict check and the
// insert in CreateReservation run as a single unit for a given court. The
// exclusion constraint in database/setup.sql backs this up at the storage
// layer for deployments with more than one process.
type courtLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCourtLocks() *courtLocks {
	return &courtLocks{locks: map[string]*sync.Mutex{}}
}

// acquire locks the mutex for courtID and returns the matching unlock.
func (l *courtLocks) acquire(courtID string) func() {
	l.mu.Lock()
	m, ok := l.locks[courtID]

	if !ok {
		m = &sync.Mutex{}
		l.locks[courtID] = m
	}

	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
