package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/user"
	"booklend-backend/pkg/cache"
)

const (
	roleCacheKeyPrefix = "role:"
	roleCacheTTL       = 5 * time.Minute
)

type userService struct {
	repo  user.Repository
	cache cache.Cache
}

func NewUserService(repo user.Repository, c cache.Cache) user.Service {
	return &userService{repo: repo, cache: c}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, user.ErrEmptyEmail
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return &user.RegisterResult{User: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &user.User{
		Email:     email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      user.RoleUser,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &user.RegisterResult{User: created}, nil
}

func (s *userService) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *userService) Patch(ctx context.Context, id primitive.ObjectID, req *user.PatchRequest) (*user.User, error) {
	if req.Role != nil && !req.Role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	updated, err := s.repo.Patch(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Role promotions must be visible on the next request.
	_ = s.cache.Delete(ctx, roleCacheKeyPrefix+updated.Email)
	return updated, nil
}

func (s *userService) RoleByEmail(ctx context.Context, email string) (string, error) {
	cacheKey := roleCacheKeyPrefix + email

	var cached string
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	_ = s.cache.Set(ctx, cacheKey, string(u.Role), roleCacheTTL)
	return string(u.Role), nil
}

func (s *userService) PublicRole(ctx context.Context, email string) (user.Role, error) {
	role, err := s.RoleByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return user.Role(role), nil
}
