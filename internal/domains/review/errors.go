package review

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrNotYourOrder      = errors.New("order belongs to another customer")
	ErrOrderNotPaid      = errors.New("order is not paid")
	ErrOrderNotDelivered = errors.New("order is not delivered")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
)
