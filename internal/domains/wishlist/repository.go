package wishlist

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for wishlist items.
type Repository interface {
	// Add inserts the item. When the (email, bookId) pair already exists
	// the stored item is returned unchanged.
	Add(ctx context.Context, item *Item) (*Item, error)

	// ListByEmail returns a customer's items, newest first.
	ListByEmail(ctx context.Context, email string) ([]Item, error)

	// Remove deletes the item when it belongs to the given email. Returns
	// ErrItemNotFound otherwise.
	Remove(ctx context.Context, id primitive.ObjectID, email string) error
}
