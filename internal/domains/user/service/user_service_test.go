package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/user"
	"booklend-backend/pkg/cache"
)

type fakeUserRepo struct {
	byEmail  map[string]*user.User
	byID     map[primitive.ObjectID]*user.User
	getCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*user.User{},
		byID:    map[primitive.ObjectID]*user.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	f.getCalls++
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range f.byEmail {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Patch(_ context.Context, id primitive.ObjectID, req *user.PatchRequest) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.PhotoURL != nil {
		u.PhotoURL = *req.PhotoURL
	}
	return u, nil
}

func TestRegister_IsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, cache.NewMemory())
	ctx := context.Background()

	first, err := svc.Register(ctx, &user.RegisterRequest{Email: "Reader@Example.com", Name: "Reader"})
	require.NoError(t, err)
	assert.False(t, first.AlreadyExisted)
	assert.Equal(t, user.RoleUser, first.User.Role)
	assert.Equal(t, "reader@example.com", first.User.Email)
	assert.False(t, first.User.CreatedAt.IsZero())

	second, err := svc.Register(ctx, &user.RegisterRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.True(t, second.AlreadyExisted)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Len(t, repo.byEmail, 1)
}

func TestRegister_RequiresEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), cache.NewMemory())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{Email: "   "})
	assert.ErrorIs(t, err, user.ErrEmptyEmail)
}

func TestRoleByEmail_CachesLookups(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, cache.NewMemory())
	ctx := context.Background()

	res, err := svc.Register(ctx, &user.RegisterRequest{Email: "lib@example.com"})
	require.NoError(t, err)
	librarian := user.RoleLibrarian
	_, err = svc.Patch(ctx, res.User.ID, &user.PatchRequest{Role: &librarian})
	require.NoError(t, err)

	repo.getCalls = 0
	for i := 0; i < 3; i++ {
		role, err := svc.RoleByEmail(ctx, "lib@example.com")
		require.NoError(t, err)
		assert.Equal(t, "librarian", role)
	}
	assert.Equal(t, 1, repo.getCalls, "second and third lookups should hit the cache")
}

func TestRoleByEmail_UnknownUserIsAnError(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), cache.NewMemory())

	_, err := svc.RoleByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestPublicRole_DefaultsToUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), cache.NewMemory())

	role, err := svc.PublicRole(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, role)
}

func TestPatch_PromotionInvalidatesRoleCache(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, cache.NewMemory())
	ctx := context.Background()

	res, err := svc.Register(ctx, &user.RegisterRequest{Email: "up@example.com"})
	require.NoError(t, err)

	role, err := svc.RoleByEmail(ctx, "up@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user", role)

	admin := user.RoleAdmin
	_, err = svc.Patch(ctx, res.User.ID, &user.PatchRequest{Role: &admin})
	require.NoError(t, err)

	role, err = svc.RoleByEmail(ctx, "up@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", role, "stale cached role must not survive a promotion")
}

func TestPatch_RejectsUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, cache.NewMemory())

	bogus := user.Role("superuser")
	_, err := svc.Patch(context.Background(), primitive.NewObjectID(), &user.PatchRequest{Role: &bogus})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
