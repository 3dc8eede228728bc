package wishlist

import "errors"

var (
	ErrInvalidBookID = errors.New("invalid book id")
	ErrItemNotFound  = errors.New("wishlist item not found")
)
