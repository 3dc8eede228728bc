// Package processor abstracts the hosted-checkout payment collaborator.
package processor

import "context"

// CheckoutRequest describes the hosted session to create. UnitAmount is in
// minor currency units.
type CheckoutRequest struct {
	BookName      string
	OrderID       string
	CustomerEmail string
	UnitAmount    int64
	Currency      string
}

// CheckoutSession is the created hosted session; URL is where the customer
// is redirected to pay.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionResult is the outcome of a checkout session as reported by the
// processor. TransactionID identifies the underlying payment and is the
// idempotency key for reconciliation.
type SessionResult struct {
	ID            string
	TransactionID string
	Paid          bool
	AmountTotal   int64 // minor units
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// Processor creates hosted checkout sessions and reports their outcome.
type Processor interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*SessionResult, error)
}
