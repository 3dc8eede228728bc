package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"booklend-backend/internal/identity"
)

type fakeVerifier struct {
	emails map[string]string // token -> email
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (identity.Principal, error) {
	email, ok := f.emails[token]
	if !ok {
		return identity.Principal{}, identity.ErrUnauthenticated
	}
	return identity.Principal{Email: email}, nil
}

func newAuthRouter(v identity.Verifier) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.GET("/protected", RequireAuthenticated(v), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"email": PrincipalEmail(c)})
	})
	return r, &reached
}

func TestRequireAuthenticated_NoHeader(t *testing.T) {
	r, reached := newAuthRouter(&fakeVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, w.Body.String())
	assert.False(t, *reached, "handler must not run for unauthenticated requests")
}

func TestRequireAuthenticated_MalformedHeader(t *testing.T) {
	r, reached := newAuthRouter(&fakeVerifier{emails: map[string]string{"tok": "a@b.c"}})

	for _, header := range []string{"tok", "Basic tok", "Bearer", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.False(t, *reached)
}

func TestRequireAuthenticated_InvalidToken(t *testing.T) {
	r, reached := newAuthRouter(&fakeVerifier{emails: map[string]string{"good": "a@b.c"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuthenticated_AttachesPrincipal(t *testing.T) {
	r, reached := newAuthRouter(&fakeVerifier{emails: map[string]string{"good": "reader@example.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"reader@example.com"}`, w.Body.String())
	assert.True(t, *reached)
}
