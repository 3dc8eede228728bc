package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/book"
	"booklend-backend/internal/domains/wishlist"
	"booklend-backend/internal/shared/middleware"
	"booklend-backend/internal/shared/response"
)

type WishlistHandler struct {
	service wishlist.Service
}

func NewWishlistHandler(svc wishlist.Service) *WishlistHandler {
	return &WishlistHandler{service: svc}
}

// Add handles POST /wishlist (authenticated).
func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlist.AddRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.Add(c.Request.Context(), middleware.PrincipalEmail(c), &req)
	if err != nil {
		writeWishlistError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListMine handles GET /wishlist?email= (authenticated + self).
func (h *WishlistHandler) ListMine(c *gin.Context) {
	items, err := h.service.ListMine(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /wishlist/:id (authenticated).
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist item id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.PrincipalEmail(c), id); err != nil {
		writeWishlistError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func writeWishlistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wishlist.ErrInvalidBookID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, book.ErrBookNotFound), errors.Is(err, wishlist.ErrItemNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
