package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/payment"
	"booklend-backend/internal/domains/payment/processor"
	"booklend-backend/pkg/logger"
)

type paymentService struct {
	repo      payment.Repository
	processor processor.Processor
	currency  string
	now       func() time.Time
}

func NewPaymentService(repo payment.Repository, proc processor.Processor, currency string) payment.Service {
	return &paymentService{
		repo:      repo,
		processor: proc,
		currency:  strings.ToLower(currency),
		now:       time.Now,
	}
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, customerEmail string, req payment.CheckoutRequest) (string, error) {
	if _, err := primitive.ObjectIDFromHex(req.OrderID); err != nil {
		return "", payment.ErrInvalidOrderID
	}

	session, err := s.processor.CreateCheckoutSession(ctx, processor.CheckoutRequest{
		BookName:      req.BookName,
		OrderID:       req.OrderID,
		CustomerEmail: customerEmail,
		UnitAmount:    minorUnits(req.Price),
		Currency:      s.currency,
	})
	if err != nil {
		return "", err
	}

	logger.Info("checkout session created", map[string]interface{}{
		"session_id": session.ID,
		"order_id":   req.OrderID,
	})
	return session.URL, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, sessionID string) (*payment.ConfirmResult, error) {
	if sessionID == "" {
		return nil, payment.ErrMissingSessionID
	}

	session, err := s.processor.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.TransactionID != "" {
		existing, err := s.repo.FindByTransactionID(ctx, session.TransactionID)
		if err == nil {
			return &payment.ConfirmResult{Outcome: payment.OutcomeAlreadyPaid, Payment: existing}, nil
		}
		if !errors.Is(err, payment.ErrPaymentNotFound) {
			return nil, err
		}
	}

	if !session.Paid {
		return &payment.ConfirmResult{Outcome: payment.OutcomeNotPaid}, nil
	}

	orderHex := session.Metadata["orderId"]
	if orderHex == "" {
		return nil, payment.ErrMissingOrderReference
	}
	orderID, err := primitive.ObjectIDFromHex(orderHex)
	if err != nil {
		return nil, payment.ErrInvalidOrderID
	}

	entry := &payment.Payment{
		OrderID:       orderID,
		BookName:      session.Metadata["name"],
		CustomerEmail: session.CustomerEmail,
		Amount:        majorUnits(session.AmountTotal),
		Currency:      session.Currency,
		TransactionID: session.TransactionID,
		PaidAt:        s.now(),
	}

	recorded, err := s.repo.Confirm(ctx, orderID, entry)
	if errors.Is(err, payment.ErrDuplicateTransaction) {
		// Lost the race against a concurrent confirm of the same session.
		existing, findErr := s.repo.FindByTransactionID(ctx, session.TransactionID)
		if findErr != nil {
			return nil, findErr
		}
		return &payment.ConfirmResult{Outcome: payment.OutcomeAlreadyPaid, Payment: existing}, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("payment recorded", map[string]interface{}{
		"transaction_id": recorded.TransactionID,
		"order_id":       orderID.Hex(),
	})
	return &payment.ConfirmResult{Outcome: payment.OutcomePaid, Payment: recorded}, nil
}

func (s *paymentService) HistoryByCustomer(ctx context.Context, email string) ([]payment.Payment, error) {
	return s.repo.ListByCustomer(ctx, email)
}

// minorUnits converts a major-unit price to the processor's integer minor
// units, truncating anything below one minor unit.
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).IntPart()
}

func majorUnits(amount int64) float64 {
	f, _ := decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).Float64()
	return f
}
