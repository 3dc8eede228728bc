package book

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// Request is the create/update payload. The field set is a fixed
// whitelist; anything else in the body is dropped.
type Request struct {
	AuthorName        string      `json:"authorName"`
	AuthorEmail       string      `json:"authorEmail"`
	AuthorPhoneNumber string      `json:"authorPhoneNumber"`
	BookName          string      `json:"bookName"`
	BookPhotoURL      string      `json:"bookPhotoURL"`
	Address           string      `json:"address"`
	Status            string      `json:"status"`
	Price             json.Number `json:"price"`
	Description       string      `json:"description"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookName, validation.Required),
		validation.Field(&r.AuthorName, validation.Required),
		validation.Field(&r.AuthorEmail, validation.Required, is.Email),
	)
}

// ParsePrice coerces the price to a non-negative number.
func (r Request) ParsePrice() (float64, error) {
	d, err := decimal.NewFromString(r.Price.String())
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if d.IsNegative() {
		return 0, ErrNegativePrice
	}
	return d.InexactFloat64(), nil
}

// toBook maps the whitelist onto a Book value, leaving timestamps to the
// caller.
func (r Request) toBook(price float64) *Book {
	return &Book{
		AuthorName:        r.AuthorName,
		AuthorEmail:       r.AuthorEmail,
		AuthorPhoneNumber: r.AuthorPhoneNumber,
		BookName:          r.BookName,
		BookPhotoURL:      r.BookPhotoURL,
		Address:           r.Address,
		Status:            r.Status,
		Price:             price,
		Description:       r.Description,
	}
}

// NewBook builds the stored document for Create: creation timestamp now,
// publish timestamp iff the initial status is already "published".
func (r Request) NewBook(now time.Time) (*Book, error) {
	price, err := r.ParsePrice()
	if err != nil {
		return nil, err
	}
	b := r.toBook(price)
	b.CreatedAt = now
	if b.Status == StatusPublished {
		b.PublishedAt = &now
	}
	return b, nil
}

// UpdateBook builds the replacement field set for Update.
func (r Request) UpdateBook() (*Book, error) {
	price, err := r.ParsePrice()
	if err != nil {
		return nil, err
	}
	return r.toBook(price), nil
}
