package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the Order collection. Orders are
// never deleted.
type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)

	// GetByID returns ErrOrderNotFound when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*Order, error)

	// ListByCustomer returns a customer's orders in full.
	ListByCustomer(ctx context.Context, email string) ([]Order, error)

	// ListByAuthor returns orders for the librarian's books, projected to
	// Summary.
	ListByAuthor(ctx context.Context, email string) ([]Summary, error)

	// UpdateStatus sets the fulfillment status and returns the updated
	// order. Transition validity is the service's concern.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Order, error)
}
