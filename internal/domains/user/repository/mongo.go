package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/domains/user"
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) user.Repository {
	return &mongoRepository{coll: db.Collection(database.UsersCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	users := []user.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoRepository) Patch(ctx context.Context, id primitive.ObjectID, req *user.PatchRequest) (*user.User, error) {
	set := bson.M{}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.PhotoURL != nil {
		set["photoURL"] = *req.PhotoURL
	}
	if len(set) == 0 {
		return nil, user.ErrEmptyPatch
	}

	var updated user.User
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("patch user: %w", err)
	}
	return &updated, nil
}
