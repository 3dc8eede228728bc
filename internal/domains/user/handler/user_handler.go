package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/user"
	"booklend-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// List handles GET /users?role= (admin).
func (h *UserHandler) List(c *gin.Context) {
	role := user.Role(c.Query("role"))

	users, err := h.service.ListByRole(c.Request.Context(), role)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// Register handles POST /users. Re-registering an existing email is a
// no-op success.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrEmptyEmail) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	if result.AlreadyExisted {
		c.JSON(http.StatusOK, gin.H{"message": "User Already Exist"})
		return
	}
	c.JSON(http.StatusCreated, result.User)
}

// Patch handles PATCH /users/:id (authenticated; role promotion).
func (h *UserHandler) Patch(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req user.PatchRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Patch(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrEmptyPatch):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Role handles GET /users/:email/role, the public lookup that defaults
// unknown emails to "user".
func (h *UserHandler) Role(c *gin.Context) {
	role, err := h.service.PublicRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}
