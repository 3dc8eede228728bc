// Package identity wraps the external token-verification collaborator.
// It turns a raw bearer credential into a verified principal email.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned for any missing, malformed, expired or
// revoked credential. Callers map it to 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the verified identity attached to a request.
type Principal struct {
	Email string
}

// Verifier validates a bearer token and yields the principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}
