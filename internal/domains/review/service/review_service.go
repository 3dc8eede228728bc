package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/order"
	"booklend-backend/internal/domains/review"
	"booklend-backend/pkg/logger"
)

type reviewService struct {
	repo   review.Repository
	orders order.Repository
	now    func() time.Time
}

func NewReviewService(repo review.Repository, orders order.Repository) review.Service {
	return &reviewService{repo: repo, orders: orders, now: time.Now}
}

func (s *reviewService) Submit(ctx context.Context, customerEmail string, req *review.SubmitRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return nil, review.ErrInvalidOrderID
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(o.CustomerEmail, customerEmail) {
		return nil, review.ErrNotYourOrder
	}
	if o.PaymentStatus != order.PaymentPaid {
		return nil, review.ErrOrderNotPaid
	}
	if o.Status != order.StatusDelivered {
		return nil, review.ErrOrderNotDelivered
	}
	if o.ReviewStatus {
		return nil, review.ErrAlreadyReviewed
	}

	rev := &review.Review{
		BookID:        o.BookID,
		OrderID:       o.ID,
		BookName:      o.BookName,
		CustomerEmail: o.CustomerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     s.now(),
	}

	recorded, err := s.repo.Submit(ctx, rev)
	if err != nil {
		return nil, err
	}

	logger.Info("review submitted", map[string]interface{}{
		"order_id": o.ID.Hex(),
		"book_id":  o.BookID.Hex(),
		"rating":   req.Rating,
	})
	return recorded, nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]review.Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}
