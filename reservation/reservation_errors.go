package reservation

import "errors"

var ErrReservationNotFound = errors.New("reservation not found")

var ErrInvalidInterval = errors.New("end time must be after start time")

var ErrScheduleConflict = errors.New("court already reserved for this interval")

var ErrInvalidReservationState = errors.New("invalid reservation state")

var ErrCourtNotBookable = errors.New("court is not bookable")
