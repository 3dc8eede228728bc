package payment

import "errors"

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicateTransaction  = errors.New("transaction already recorded")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrMissingSessionID      = errors.New("session id is required")
	ErrMissingOrderReference = errors.New("session carries no order reference")
)
