package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/domains/order"
	"booklend-backend/internal/domains/payment"
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	orders   *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) payment.Repository {
	return &mongoRepository{
		client:   db.Client(),
		payments: db.Collection(database.PaymentsCollection),
		orders:   db.Collection(database.OrdersCollection),
	}
}

func (r *mongoRepository) FindByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.payments.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return &p, nil
}

// Confirm runs the ledger insert and the order flip in one transaction so a
// crash between the two cannot leave a paid order without a ledger entry.
// The unique index on transactionId turns a concurrent double-confirm into
// ErrDuplicateTransaction.
func (r *mongoRepository) Confirm(ctx context.Context, orderID primitive.ObjectID, p *payment.Payment) (*payment.Payment, error) {
	sess, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.payments.InsertOne(sc, p)
		if err != nil {
			return nil, err
		}
		p.ID = res.InsertedID.(primitive.ObjectID)

		update := bson.M{"$set": bson.M{"paymentStatus": order.PaymentPaid}}
		if _, err := r.orders.UpdateByID(sc, orderID, update); err != nil {
			return nil, err
		}
		return p, nil
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, payment.ErrDuplicateTransaction
	}
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return result.(*payment.Payment), nil
}

func (r *mongoRepository) ListByCustomer(ctx context.Context, email string) ([]payment.Payment, error) {
	opts := options.Find().SetSort(bson.M{"paidAt": -1})
	cursor, err := r.payments.Find(ctx, bson.M{"customerEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments by customer: %w", err)
	}
	payments := []payment.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
