package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booklend-backend/internal/domains/book"
	"booklend-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.Mongo) book.Repository {
	return &mongoRepository{coll: db.Collection(database.BooksCollection)}
}

// searchConditions builds the public/admin listing filter: optional status
// plus a case-insensitive substring match over title or author name. User
// input is quoted so regex metacharacters match literally.
func searchConditions(status, searchText string) bson.M {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if searchText != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(searchText), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"bookName": re},
			bson.M{"authorName": re},
		}
	}
	return filter
}

// searchOptions projects to display fields, sorts by price descending and
// applies the caller's pagination window.
func searchOptions(f book.SearchFilter) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "price", Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit).
		SetProjection(bson.M{
			"bookName":     1,
			"description":  1,
			"bookPhotoURL": 1,
			"price":        1,
			"createdAt":    1,
		})
}

func (r *mongoRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*book.Book, error) {
	var b book.Book
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find book: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) ListByAuthorEmail(ctx context.Context, email string) ([]book.Book, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"authorEmail": email})
	if err != nil {
		return nil, fmt.Errorf("list books by author: %w", err)
	}
	books := []book.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *mongoRepository) Latest(ctx context.Context, limit int64) ([]book.Card, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"bookName":     1,
			"description":  1,
			"bookPhotoURL": 1,
			"price":        1,
		})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list latest books: %w", err)
	}
	cards := []book.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("decode latest books: %w", err)
	}
	return cards, nil
}

func (r *mongoRepository) Search(ctx context.Context, f book.SearchFilter) ([]book.Card, int64, error) {
	filter := searchConditions(f.Status, f.SearchText)

	cursor, err := r.coll.Find(ctx, filter, searchOptions(f))
	if err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}
	cards := []book.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, 0, fmt.Errorf("decode search results: %w", err)
	}

	// The count covers the whole filtered set, not the page.
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}
	return cards, total, nil
}

func (r *mongoRepository) AdminSearch(ctx context.Context, searchText string, limit int64) ([]book.AdminRow, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{
			"bookPhotoURL": 1,
			"bookName":     1,
			"createdAt":    1,
			"authorName":   1,
			"status":       1,
		})

	cursor, err := r.coll.Find(ctx, searchConditions("", searchText), opts)
	if err != nil {
		return nil, fmt.Errorf("admin search books: %w", err)
	}
	rows := []book.AdminRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode admin rows: %w", err)
	}
	return rows, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, fields *book.Book, publishedAt *time.Time) (*book.Book, error) {
	set := bson.M{
		"authorName":        fields.AuthorName,
		"authorEmail":       fields.AuthorEmail,
		"authorPhoneNumber": fields.AuthorPhoneNumber,
		"bookName":          fields.BookName,
		"bookPhotoURL":      fields.BookPhotoURL,
		"address":           fields.Address,
		"status":            fields.Status,
		"price":             fields.Price,
		"description":       fields.Description,
	}
	if publishedAt != nil {
		set["publishedAt"] = *publishedAt
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, publishedAt *time.Time) (*book.Book, error) {
	set := bson.M{"status": status}
	if publishedAt != nil {
		set["publishedAt"] = *publishedAt
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *mongoRepository) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.M) (*book.Book, error) {
	var updated book.Book
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
