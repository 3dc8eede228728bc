package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service handles review submission and listing.
type Service interface {
	// Submit records a review for the caller's order. The order must be
	// paid, delivered, and not yet reviewed.
	Submit(ctx context.Context, customerEmail string, req *SubmitRequest) (*Review, error)

	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]Review, error)
}
