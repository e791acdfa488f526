package reservation

import "time"

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

type Reservation struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"courtId"`
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"` // PENDING, CONFIRMED, CANCELLED
	CreatedAt time.Time `json:"createdAt"`

	// CourtName is only populated by the list queries that join court data.
	CourtName string `json:"courtName,omitempty"`
}

// Duration returns the booked interval length. Intervals are half-open
// [StartTime, EndTime), so two reservations may share a boundary instant.
func (r Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
