package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"booklend-backend/internal/identity"
)

type fakeResolver struct {
	roles map[string]string
}

func (f *fakeResolver) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", errors.New("user not found")
	}
	return role, nil
}

func newGatedRouter(resolver RoleResolver, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	verifier := &fakeVerifier{emails: map[string]string{
		"admin-token":     "admin@example.com",
		"librarian-token": "lib@example.com",
		"user-token":      "user@example.com",
	}}
	r := gin.New()
	r.GET("/gated",
		RequireAuthenticated(verifier),
		RequireRole(resolver, role),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole_ExactMatchOnly(t *testing.T) {
	resolver := &fakeResolver{roles: map[string]string{
		"admin@example.com": "admin",
		"lib@example.com":   "librarian",
	}}

	// An admin is not implicitly a librarian, and vice versa.
	librarianGate := newGatedRouter(resolver, "librarian")
	assert.Equal(t, http.StatusForbidden, doGet(librarianGate, "/gated", "admin-token").Code)
	assert.Equal(t, http.StatusOK, doGet(librarianGate, "/gated", "librarian-token").Code)

	adminGate := newGatedRouter(resolver, "admin")
	assert.Equal(t, http.StatusForbidden, doGet(adminGate, "/gated", "librarian-token").Code)
	assert.Equal(t, http.StatusOK, doGet(adminGate, "/gated", "admin-token").Code)
}

func TestRequireRole_UnknownUserRejected(t *testing.T) {
	// Absent user means absent role: reject, never default to "user".
	r := newGatedRouter(&fakeResolver{roles: map[string]string{}}, "librarian")

	w := doGet(r, "/gated", "user-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden Access"}`, w.Body.String())
}

func TestRequireSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := &fakeVerifier{emails: map[string]string{"tok": "me@example.com"}}
	r := gin.New()
	r.GET("/mine",
		RequireAuthenticated(verifier),
		RequireSelf("email"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	assert.Equal(t, http.StatusOK, doGet(r, "/mine?email=me@example.com", "tok").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/mine?email=other@example.com", "tok").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/mine", "tok").Code)
}

var _ identity.Verifier = (*fakeVerifier)(nil)
