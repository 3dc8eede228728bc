package review

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer's rating of a delivered, paid order. The orderId
// carries a unique index so each order is reviewed at most once.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID        primitive.ObjectID `bson:"bookId" json:"bookId"`
	OrderID       primitive.ObjectID `bson:"orderId" json:"orderId"`
	BookName      string             `bson:"bookName" json:"bookName"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	Rating        int                `bson:"rating" json:"rating"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// SubmitRequest is the review payload.
type SubmitRequest struct {
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}
