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
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) order.Repository {
	return &mongoRepository{coll: db.Collection(database.OrdersCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return o, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*order.Order, error) {
	var o order.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (r *mongoRepository) ListByCustomer(ctx context.Context, email string) ([]order.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customerEmail": email})
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	orders := []order.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoRepository) ListByAuthor(ctx context.Context, email string) ([]order.Summary, error) {
	opts := options.Find().SetProjection(bson.M{
		"bookName":     1,
		"customerName": 1,
		"status":       1,
	})
	cursor, err := r.coll.Find(ctx, bson.M{"bookAuthorEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders by author: %w", err)
	}
	summaries := []order.Summary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode order summaries: %w", err)
	}
	return summaries, nil
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status order.Status) (*order.Order, error) {
	var updated order.Order
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &updated, nil
}
