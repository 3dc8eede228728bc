package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidBookID     = errors.New("invalid book id")
	ErrInvalidStatus     = errors.New("unknown fulfillment status")
	ErrInvalidTransition = errors.New("invalid fulfillment status transition")
)
