package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/domains/review"
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	client  *mongo.Client
	reviews *mongo.Collection
	orders  *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) review.Repository {
	return &mongoRepository{
		client:  db.Client(),
		reviews: db.Collection(database.ReviewsCollection),
		orders:  db.Collection(database.OrdersCollection),
	}
}

// Submit inserts the review and marks the order reviewed in one
// transaction. The unique index on orderId rejects a second review of the
// same order even under concurrent submits.
func (r *mongoRepository) Submit(ctx context.Context, rev *review.Review) (*review.Review, error) {
	sess, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.reviews.InsertOne(sc, rev)
		if err != nil {
			return nil, err
		}
		rev.ID = res.InsertedID.(primitive.ObjectID)

		update := bson.M{"$set": bson.M{"reviewStatus": true}}
		if _, err := r.orders.UpdateByID(sc, rev.OrderID, update); err != nil {
			return nil, err
		}
		return rev, nil
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, review.ErrAlreadyReviewed
	}
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return result.(*review.Review), nil
}

func (r *mongoRepository) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]review.Review, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.reviews.Find(ctx, bson.M{"bookId": bookID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews by book: %w", err)
	}
	reviews := []review.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
