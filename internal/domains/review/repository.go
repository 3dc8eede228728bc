package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for reviews.
type Repository interface {
	// Submit inserts the review and flips the order's review flag in one
	// atomic step. An orderId collision returns ErrAlreadyReviewed with no
	// writes applied.
	Submit(ctx context.Context, r *Review) (*Review, error)

	// ListByBook returns a book's reviews, newest first.
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]Review, error)
}
