package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first self-registration and never deleted. Email is
// the identity key.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleLibrarian, RoleAdmin:
		return true
	}
	return false
}

// RegisterRequest is the self-registration payload. Role is never taken
// from the caller; every new user starts as "user".
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// PatchRequest carries the admin-driven updates allowed on a user. Only
// non-nil fields are applied.
type PatchRequest struct {
	Role     *Role   `json:"role"`
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
}
