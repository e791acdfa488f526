package court

const (
	StatusAvailable   = "AVAILABLE"
	StatusMaintenance = "MAINTENANCE"
)

type Court struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sport      string  `json:"sport"` // FOOTBALL, TENNIS, BASKETBALL, ...
	HourlyRate float64 `json:"hourlyRate"`
	Status     string  `json:"status"` // AVAILABLE, MAINTENANCE
}

// Bookable reports whether reservations may be taken on the court.
func (c Court) Bookable() bool {
	return c.Status == StatusAvailable
}
