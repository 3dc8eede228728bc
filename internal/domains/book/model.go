package book

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book lifecycle statuses. Librarians may use additional values; these two
// are the ones with system meaning.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Book is owned by the librarian identity in AuthorEmail. PublishedAt is
// set the first time the book reaches "published" and never reset.
type Book struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthorName        string             `bson:"authorName" json:"authorName"`
	AuthorEmail       string             `bson:"authorEmail" json:"authorEmail"`
	AuthorPhoneNumber string             `bson:"authorPhoneNumber" json:"authorPhoneNumber"`
	BookName          string             `bson:"bookName" json:"bookName"`
	BookPhotoURL      string             `bson:"bookPhotoURL" json:"bookPhotoURL"`
	Address           string             `bson:"address" json:"address"`
	Status            string             `bson:"status" json:"status"`
	Price             float64            `bson:"price" json:"price"`
	Description       string             `bson:"description" json:"description"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	PublishedAt       *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
}

// Card is the public listing projection.
type Card struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	BookName     string             `bson:"bookName" json:"bookName"`
	Description  string             `bson:"description" json:"description"`
	BookPhotoURL string             `bson:"bookPhotoURL" json:"bookPhotoURL"`
	Price        float64            `bson:"price" json:"price"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// AdminRow is the moderation listing projection.
type AdminRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	BookName     string             `bson:"bookName" json:"bookName"`
	BookPhotoURL string             `bson:"bookPhotoURL" json:"bookPhotoURL"`
	AuthorName   string             `bson:"authorName" json:"authorName"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Page is the paginated public search result. Total counts every document
// matching the filter, not just the returned slice.
type Page struct {
	Books []Card `json:"books"`
	Total int64  `json:"total"`
}

// SearchFilter drives the public listing: free-text substring match over
// title or author name, optional status, skip/limit pagination.
type SearchFilter struct {
	Status     string
	SearchText string
	Limit      int64
	Skip       int64
}
