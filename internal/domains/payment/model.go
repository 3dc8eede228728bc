package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a ledger entry recording a settled checkout session. The
// transactionId carries a unique index so the same settlement can be
// recorded at most once.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       primitive.ObjectID `bson:"orderId" json:"orderId"`
	BookName      string             `bson:"bookName" json:"bookName"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}

// CheckoutRequest starts a hosted checkout for an order.
type CheckoutRequest struct {
	OrderID  string  `json:"orderId"`
	BookName string  `json:"bookName"`
	Price    float64 `json:"price"`
}

// ConfirmOutcome distinguishes the three reconciliation results.
type ConfirmOutcome string

const (
	OutcomePaid        ConfirmOutcome = "paid"
	OutcomeAlreadyPaid ConfirmOutcome = "already_paid"
	OutcomeNotPaid     ConfirmOutcome = "not_paid"
)

// ConfirmResult reports what reconciliation did for a session.
type ConfirmResult struct {
	Outcome ConfirmOutcome
	Payment *Payment
}
