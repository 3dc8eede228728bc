package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/book"
	"booklend-backend/internal/domains/wishlist"
)

type wishlistService struct {
	repo  wishlist.Repository
	books book.Repository
	now   func() time.Time
}

func NewWishlistService(repo wishlist.Repository, books book.Repository) wishlist.Service {
	return &wishlistService{repo: repo, books: books, now: time.Now}
}

func (s *wishlistService) Add(ctx context.Context, email string, req *wishlist.AddRequest) (*wishlist.Item, error) {
	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		return nil, wishlist.ErrInvalidBookID
	}

	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, &wishlist.Item{
		Email:        email,
		BookID:       b.ID,
		BookName:     b.BookName,
		BookPhotoURL: b.BookPhotoURL,
		AddedAt:      s.now(),
	})
}

func (s *wishlistService) ListMine(ctx context.Context, email string) ([]wishlist.Item, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *wishlistService) Remove(ctx context.Context, email string, id primitive.ObjectID) error {
	return s.repo.Remove(ctx, id, email)
}
