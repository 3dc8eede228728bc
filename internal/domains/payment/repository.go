package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines data access for the payments ledger.
type Repository interface {
	// FindByTransactionID returns ErrPaymentNotFound when the ledger has
	// no entry for the transaction.
	FindByTransactionID(ctx context.Context, transactionID string) (*Payment, error)

	// Confirm records the ledger entry and marks the order paid in one
	// atomic step. A transactionId collision returns
	// ErrDuplicateTransaction with no writes applied.
	Confirm(ctx context.Context, orderID primitive.ObjectID, p *Payment) (*Payment, error)

	// ListByCustomer returns the customer's ledger entries, newest first.
	ListByCustomer(ctx context.Context, email string) ([]Payment, error)
}
