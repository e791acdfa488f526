package payment

import "time"

const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

type Payment struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"` // card, cash, ...
	Status        string    `json:"status"` // COMPLETED, FAILED
	SettledAt     time.Time `json:"settledAt"`
}
