package wishlist

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item bookmarks a book for a customer. The (email, bookId) pair carries a
// unique index, so adding twice is a no-op.
type Item struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	BookID       primitive.ObjectID `bson:"bookId" json:"bookId"`
	BookName     string             `bson:"bookName" json:"bookName"`
	BookPhotoURL string             `bson:"bookPhotoURL,omitempty" json:"bookPhotoURL,omitempty"`
	AddedAt      time.Time          `bson:"addedAt" json:"addedAt"`
}

// AddRequest bookmarks a book.
type AddRequest struct {
	BookID string `json:"bookId"`
}
