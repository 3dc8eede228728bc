package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterResult distinguishes a fresh registration from the idempotent
// no-op on an already known email.
type RegisterResult struct {
	User           *User
	AlreadyExisted bool
}

// Service defines business logic for the User domain.
type Service interface {
	// Register creates the user on first sight of the email. Registering
	// an existing email is a no-op success, not an error.
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error)

	// ListByRole lists users for the admin dashboard.
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// Patch applies admin-driven field updates (role promotion included)
	// and invalidates the role cache for the affected user.
	Patch(ctx context.Context, id primitive.ObjectID, req *PatchRequest) (*User, error)

	// RoleByEmail resolves the stored role. Returns ErrUserNotFound for an
	// unknown email; gates must treat that as no-match, never as "user".
	RoleByEmail(ctx context.Context, email string) (string, error)

	// PublicRole is the display lookup: unknown emails default to "user".
	PublicRole(ctx context.Context, email string) (Role, error)
}
