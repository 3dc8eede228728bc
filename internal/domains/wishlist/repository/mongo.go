package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/domains/wishlist"
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) wishlist.Repository {
	return &mongoRepository{coll: db.Collection(database.WishListCollection)}
}

// Add relies on the unique (email, bookId) index to make the insert
// idempotent. On a duplicate the stored item is fetched and returned.
func (r *mongoRepository) Add(ctx context.Context, item *wishlist.Item) (*wishlist.Item, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		var existing wishlist.Item
		findErr := r.coll.FindOne(ctx, bson.M{
			"email":  item.Email,
			"bookId": item.BookID,
		}).Decode(&existing)
		if findErr != nil {
			return nil, fmt.Errorf("find wishlist item: %w", findErr)
		}
		return &existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert wishlist item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (r *mongoRepository) ListByEmail(ctx context.Context, email string) ([]wishlist.Item, error) {
	opts := options.Find().SetSort(bson.M{"addedAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	items := []wishlist.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return items, nil
}

func (r *mongoRepository) Remove(ctx context.Context, id primitive.ObjectID, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if res.DeletedCount == 0 {
		return wishlist.ErrItemNotFound
	}
	return nil
}
