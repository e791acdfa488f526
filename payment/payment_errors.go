package payment

import "errors"

var ErrAmountMismatch = errors.New("amount does not match court rate for the reserved interval")
