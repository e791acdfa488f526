package reservation

import (
	"context"
	"time"
)

type AvailabilityStore interface {
	GetActiveReservationsPerCourt(ctx context.Context, courtID string) ([]Reservation, error)
}

// Checker answers whether a requested interval collides with an existing
// non-cancelled reservation on the same court. It never writes.
type Checker struct {
	store AvailabilityStore
}

func NewChecker(store AvailabilityStore) *Checker {
	return &Checker{store: store}
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share any point in time.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// HasConflict scans the court's active reservations for an overlap with
// [start, end). excludeID skips a reservation comparing against itself,
// which matters if rescheduling is ever added; pass "" otherwise.
func (c *Checker) HasConflict(ctx context.Context, courtID string, start, end time.Time, excludeID string) (bool, error) {
	existing, err := c.store.GetActiveReservationsPerCourt(ctx, courtID)

	if err != nil {
		return false, err
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}

		if Overlaps(start, end, r.StartTime, r.EndTime) {
			return true, nil
		}
	}

	return false, nil
}
