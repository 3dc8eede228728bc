package book

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidPrice  = errors.New("price must be a number")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrEmptyStatus   = errors.New("status is required")
)
