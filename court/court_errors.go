package court

import "errors"

var ErrCourtNotFound = errors.New("court not found")

var ErrCourtInUse = errors.New("court has reservations and cannot be deleted")
