package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/book"
)

// latestPageSize caps the homepage "latest" section.
const latestPageSize = 8

type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *book.Request) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b, err := req.NewBook(time.Now())
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, b)
}

func (s *bookService) GetByID(ctx context.Context, id primitive.ObjectID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListByAuthor(ctx context.Context, email string) ([]book.Book, error) {
	return s.repo.ListByAuthorEmail(ctx, email)
}

func (s *bookService) Latest(ctx context.Context) ([]book.Card, error) {
	return s.repo.Latest(ctx, latestPageSize)
}

func (s *bookService) Search(ctx context.Context, f book.SearchFilter) (*book.Page, error) {
	cards, total, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return &book.Page{Books: cards, Total: total}, nil
}

func (s *bookService) AdminSearch(ctx context.Context, searchText string, limit int64) ([]book.AdminRow, error) {
	return s.repo.AdminSearch(ctx, searchText, limit)
}

func (s *bookService) Update(ctx context.Context, id primitive.ObjectID, req *book.Request) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	fields, err := req.UpdateBook()
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, fields, publishStamp(existing, fields.Status))
}

func (s *bookService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*book.Book, error) {
	if strings.TrimSpace(status) == "" {
		return nil, book.ErrEmptyStatus
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateStatus(ctx, id, status, publishStamp(existing, status))
}

func (s *bookService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

// publishStamp returns the publish timestamp to set, which is only on the
// first transition into "published". A book that has ever been published
// keeps its original timestamp.
func publishStamp(existing *book.Book, newStatus string) *time.Time {
	if newStatus != book.StatusPublished || existing.PublishedAt != nil {
		return nil
	}
	now := time.Now()
	return &now
}
