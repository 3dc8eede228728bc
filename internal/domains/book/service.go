package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines business logic for the catalog.
type Service interface {
	// Create inserts a new book from the whitelisted payload
	// (librarian-only route).
	Create(ctx context.Context, req *Request) (*Book, error)

	// GetByID returns full detail; ErrBookNotFound when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*Book, error)

	// ListByAuthor lists a librarian's own books.
	ListByAuthor(ctx context.Context, email string) ([]Book, error)

	// Latest returns the newest books capped at a fixed page size.
	Latest(ctx context.Context) ([]Card, error)

	// Search is the public paginated listing.
	Search(ctx context.Context, f SearchFilter) (*Page, error)

	// AdminSearch is the moderation listing.
	AdminSearch(ctx context.Context, searchText string, limit int64) ([]AdminRow, error)

	// Update fully replaces the whitelist fields. The publish timestamp is
	// stamped when this update first moves the book into "published"; it
	// is never cleared or re-stamped.
	Update(ctx context.Context, id primitive.ObjectID, req *Request) (*Book, error)

	// UpdateStatus is the admin status-only transition, following the same
	// publish-timestamp rule as Update.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*Book, error)

	// Delete removes the book permanently (admin-only route).
	Delete(ctx context.Context, id primitive.ObjectID) error
}
