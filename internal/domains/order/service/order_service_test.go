package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/order"
)

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[primitive.ObjectID]*order.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *order.Order) (*order.Order, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, email string) ([]order.Order, error) {
	var out []order.Order
	for _, o := range f.orders {
		if o.CustomerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByAuthor(_ context.Context, email string) ([]order.Summary, error) {
	var out []order.Summary
	for _, o := range f.orders {
		if o.BookAuthorEmail == email {
			out = append(out, order.Summary{ID: o.ID, BookName: o.BookName, CustomerName: o.CustomerName, Status: o.Status})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status order.Status) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	o.Status = status
	return o, nil
}

func placeRequest() *order.PlaceRequest {
	return &order.PlaceRequest{
		BookID:          primitive.NewObjectID().Hex(),
		BookName:        "Dune",
		BookAuthorEmail: "lib@example.com",
		CustomerName:    "Reader",
		CustomerEmail:   "reader@example.com",
		Price:           19.99,
	}
}

func TestPlace_ServerStampsLifecycleFields(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	o, err := svc.Place(context.Background(), placeRequest())
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus)
	assert.False(t, o.ReviewStatus)
	assert.False(t, o.OrderDate.IsZero())
}

func TestPlace_RejectsMalformedBookID(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	req := placeRequest()
	req.BookID = "not-an-object-id"
	_, err := svc.Place(context.Background(), req)
	assert.ErrorIs(t, err, order.ErrInvalidBookID)
}

func TestAdvance_HappyPath(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	o, err := svc.Place(ctx, placeRequest())
	require.NoError(t, err)

	shipped, err := svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: order.StatusShipped})
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, shipped.Status)

	delivered, err := svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: order.StatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, delivered.Status)
}

func TestAdvance_NoSkippingNoRegression(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	o, err := svc.Place(ctx, placeRequest())
	require.NoError(t, err)

	// pending -> delivered skips shipped.
	_, err = svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: order.StatusDelivered})
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	_, err = svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: order.StatusShipped})
	require.NoError(t, err)

	// shipped -> pending goes backwards.
	_, err = svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: order.StatusPending})
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestAdvance_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	o, err := svc.Place(ctx, placeRequest())
	require.NoError(t, err)

	_, err = svc.Advance(ctx, o.ID, &order.AdvanceRequest{Status: "teleported"})
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestAdvance_MissingOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	_, err := svc.Advance(context.Background(), primitive.NewObjectID(), &order.AdvanceRequest{Status: order.StatusShipped})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
