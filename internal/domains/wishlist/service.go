package wishlist

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service handles wishlist bookkeeping.
type Service interface {
	// Add bookmarks an existing book for the caller. Adding the same book
	// twice returns the stored item unchanged.
	Add(ctx context.Context, email string, req *AddRequest) (*Item, error)

	ListMine(ctx context.Context, email string) ([]Item, error)

	// Remove deletes the caller's item.
	Remove(ctx context.Context, email string, id primitive.ObjectID) error
}
