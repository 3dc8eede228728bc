package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the User collection.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByEmail returns ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// Patch applies the non-nil fields and returns the updated user.
	// Returns ErrUserNotFound when the id does not exist.
	Patch(ctx context.Context, id primitive.ObjectID, req *PatchRequest) (*User, error)
}
