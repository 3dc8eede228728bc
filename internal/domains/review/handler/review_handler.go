package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/order"
	"booklend-backend/internal/domains/review"
	"booklend-backend/internal/shared/middleware"
	"booklend-backend/internal/shared/response"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// Submit handles POST /reviews (authenticated). The reviewer is the
// verified principal.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req review.SubmitRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rev, err := h.service.Submit(c.Request.Context(), middleware.PrincipalEmail(c), &req)
	if err != nil {
		writeReviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListByBook handles GET /books/:id/reviews (public).
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	reviews, err := h.service.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func writeReviewError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs), errors.Is(err, review.ErrInvalidOrderID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, review.ErrNotYourOrder):
		response.Forbidden(c)
	case errors.Is(err, review.ErrOrderNotPaid), errors.Is(err, review.ErrOrderNotDelivered):
		response.BadRequest(c, err.Error())
	case errors.Is(err, review.ErrAlreadyReviewed):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
