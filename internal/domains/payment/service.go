package payment

import "context"

// Service handles checkout creation and settlement reconciliation.
type Service interface {
	// CreateCheckoutSession starts a hosted checkout for the order and
	// returns the redirect URL.
	CreateCheckoutSession(ctx context.Context, customerEmail string, req CheckoutRequest) (string, error)

	// ConfirmPayment reconciles a checkout session against the ledger.
	// Confirming the same session twice leaves the ledger unchanged and
	// reports OutcomeAlreadyPaid.
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmResult, error)

	// HistoryByCustomer returns the customer's ledger entries.
	HistoryByCustomer(ctx context.Context, email string) ([]Payment, error)
}
