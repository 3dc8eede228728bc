package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/config"
)

// Collection names.
const (
	UsersCollection    = "users"
	BooksCollection    = "books"
	OrdersCollection   = "orders"
	PaymentsCollection = "payments"
	ReviewsCollection  = "reviews"
	WishListCollection = "wishList"
)

// Mongo owns the client and database handle. It is constructed once by the
// container and injected into repositories.
type Mongo struct {
	cfg    config.MongoConfig
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(cfg config.MongoConfig) *Mongo {
	return &Mongo{cfg: cfg}
}

func (m *Mongo) Connect(ctx context.Context) error {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	m.client = client
	m.db = client.Database(m.cfg.Database)
	return nil
}

func (m *Mongo) HealthCheck(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Client() *mongo.Client {
	return m.client
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the services rely on. The unique index
// on payments.transactionId is what makes payment confirmation safe under
// concurrent replays of the same session.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		BooksCollection: {
			{Keys: bson.D{{Key: "authorEmail", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "customerEmail", Value: 1}}},
			{Keys: bson.D{{Key: "bookAuthorEmail", Value: 1}}},
		},
		PaymentsCollection: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "customerEmail", Value: 1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "bookId", Value: 1}}},
			{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		WishListCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "bookId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range specs {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
