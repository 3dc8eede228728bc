package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fulfillment statuses. Transitions move strictly forward one step:
// pending -> shipped -> delivered.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// CanTransition reports whether the fulfillment status may advance from s
// to next. No skipping, no regression.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Order references the book and denormalizes the book author's email so
// librarians can filter their incoming orders. Lifecycle fields (status,
// paymentStatus, reviewStatus) are owned by the server; the customer
// cannot set them.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID          primitive.ObjectID `bson:"bookId" json:"bookId"`
	BookName        string             `bson:"bookName" json:"bookName"`
	BookAuthorEmail string             `bson:"bookAuthorEmail" json:"bookAuthorEmail"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerEmail   string             `bson:"customerEmail" json:"customerEmail"`
	PhoneNumber     string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address         string             `bson:"address,omitempty" json:"address,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	Status          Status             `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	ReviewStatus    bool               `bson:"reviewStatus" json:"reviewStatus"`
}

// Summary is the librarian listing projection.
type Summary struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	BookName     string             `bson:"bookName" json:"bookName"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Status       Status             `bson:"status" json:"status"`
}

// PlaceRequest is the order payload. Any lifecycle fields a client smuggles
// into the body are discarded by the service.
type PlaceRequest struct {
	BookID          string  `json:"bookId"`
	BookName        string  `json:"bookName"`
	BookAuthorEmail string  `json:"bookAuthorEmail"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	PhoneNumber     string  `json:"phoneNumber"`
	Address         string  `json:"address"`
	Price           float64 `json:"price"`
}

// AdvanceRequest moves the fulfillment status forward.
type AdvanceRequest struct {
	Status Status `json:"status"`
}
