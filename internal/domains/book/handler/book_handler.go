package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/book"
	"booklend-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /books (librarian).
func (h *BookHandler) Create(c *gin.Context) {
	var req book.Request
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeBookError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListByAuthor handles GET /books-library?email= (librarian + self).
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	books, err := h.service.ListByAuthor(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, books)
}

// Latest handles GET /latest-books (public).
func (h *BookHandler) Latest(c *gin.Context) {
	cards, err := h.service.Latest(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Search handles GET /all-books?status&searchText&limit&skip (public).
func (h *BookHandler) Search(c *gin.Context) {
	filter := book.SearchFilter{
		Status:     c.Query("status"),
		SearchText: c.Query("searchText"),
		Limit:      queryInt64(c, "limit", 0),
		Skip:       queryInt64(c, "skip", 0),
	}

	page, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, page)
}

// AdminSearch handles GET /all-books-admin?searchText&limit (admin).
func (h *BookHandler) AdminSearch(c *gin.Context) {
	rows, err := h.service.AdminSearch(c.Request.Context(), c.Query("searchText"), queryInt64(c, "limit", 0))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Detail handles GET /book-details/:id (authenticated) and
// GET /selected-book/:id (librarian owner view).
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeBookError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Update handles PATCH /book-details/:id (librarian full replace).
func (h *BookHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req book.Request
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeBookError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatus handles PATCH /books?bookId&newStatus (admin).
func (h *BookHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Query("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, c.Query("newStatus"))
	if err != nil {
		writeBookError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /books/:id (admin).
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeBookError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func queryInt64(c *gin.Context, key string, defaultValue int64) int64 {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func writeBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, book.ErrInvalidPrice),
		errors.Is(err, book.ErrNegativePrice),
		errors.Is(err, book.ErrEmptyStatus):
		response.BadRequest(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
	}
}
