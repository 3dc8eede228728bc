package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid user role")
	ErrEmptyEmail   = errors.New("email is required")
	ErrEmptyPatch   = errors.New("no fields to update")
)
