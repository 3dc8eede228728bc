package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the order lifecycle.
type Service interface {
	// Place creates the order with server-stamped lifecycle fields:
	// orderDate=now, status=pending, paymentStatus=unpaid,
	// reviewStatus=false, whatever the caller sent.
	Place(ctx context.Context, req *PlaceRequest) (*Order, error)

	// ListMine lists a customer's orders.
	ListMine(ctx context.Context, email string) ([]Order, error)

	// ListForLibrarian lists orders on the librarian's books.
	ListForLibrarian(ctx context.Context, email string) ([]Summary, error)

	// Advance moves the fulfillment status one step forward, enforcing
	// pending -> shipped -> delivered.
	Advance(ctx context.Context, id primitive.ObjectID, req *AdvanceRequest) (*Order, error)
}
