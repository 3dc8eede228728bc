package book

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the Book collection.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when absent; a missing document is
	// never reported as an empty success.
	GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error)

	// ListByAuthorEmail returns the librarian's own books, unfiltered.
	ListByAuthorEmail(ctx context.Context, email string) ([]Book, error)

	// Latest returns the newest books by creation time, projected to Card.
	Latest(ctx context.Context, limit int64) ([]Card, error)

	// Search runs the public listing query and returns the page plus the
	// total count matching the same filter.
	Search(ctx context.Context, f SearchFilter) ([]Card, int64, error)

	// AdminSearch runs the moderation listing query.
	AdminSearch(ctx context.Context, searchText string, limit int64) ([]AdminRow, error)

	// Update replaces the whitelist fields; publishedAt is additionally
	// set when non-nil. Returns the updated book.
	Update(ctx context.Context, id primitive.ObjectID, fields *Book, publishedAt *time.Time) (*Book, error)

	// UpdateStatus patches only the status (plus publishedAt when non-nil).
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, publishedAt *time.Time) (*Book, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}
