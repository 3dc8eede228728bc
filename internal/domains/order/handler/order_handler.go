package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/order"
	"booklend-backend/internal/shared/response"
)

type OrderHandler struct {
	service order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

// Place handles POST /book-orders (authenticated).
func (h *OrderHandler) Place(c *gin.Context) {
	var req order.PlaceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	o, err := h.service.Place(c.Request.Context(), &req)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// ListMine handles GET /my-orders?email= (authenticated + self).
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.service.ListMine(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListForLibrarian handles GET /orders?email= (librarian + self).
func (h *OrderHandler) ListForLibrarian(c *gin.Context) {
	summaries, err := h.service.ListForLibrarian(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Advance handles PATCH /orders/:id (librarian).
func (h *OrderHandler) Advance(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	var req order.AdvanceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	o, err := h.service.Advance(c.Request.Context(), id, &req)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, order.ErrInvalidBookID),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
