package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"email": "reader@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	p, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", p.Email)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token := signToken(t, "other-secret", jwt.MapClaims{
		"email": "reader@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"email": "reader@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestJWTVerifier_MissingEmailClaim(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	_, err := v.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
