package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/order"
)

type orderService struct {
	repo order.Repository
}

func NewOrderService(repo order.Repository) order.Service {
	return &orderService{repo: repo}
}

func (s *orderService) Place(ctx context.Context, req *order.PlaceRequest) (*order.Order, error) {
	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		return nil, order.ErrInvalidBookID
	}

	// Lifecycle fields are stamped here, never taken from the payload.
	o := &order.Order{
		BookID:          bookID,
		BookName:        req.BookName,
		BookAuthorEmail: req.BookAuthorEmail,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Price:           req.Price,
		OrderDate:       time.Now(),
		Status:          order.StatusPending,
		PaymentStatus:   order.PaymentUnpaid,
		ReviewStatus:    false,
	}
	return s.repo.Create(ctx, o)
}

func (s *orderService) ListMine(ctx context.Context, email string) ([]order.Order, error) {
	return s.repo.ListByCustomer(ctx, email)
}

func (s *orderService) ListForLibrarian(ctx context.Context, email string) ([]order.Summary, error) {
	return s.repo.ListByAuthor(ctx, email)
}

func (s *orderService) Advance(ctx context.Context, id primitive.ObjectID, req *order.AdvanceRequest) (*order.Order, error) {
	if !req.Status.IsValid() {
		return nil, order.ErrInvalidStatus
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Status.CanTransition(req.Status) {
		return nil, order.ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, req.Status)
}
