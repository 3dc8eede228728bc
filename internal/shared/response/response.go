package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies on this API are a bare {"message": ...}; successful
// responses echo the stored document or projection directly.

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func Unauthorized(c *gin.Context) {
	Message(c, http.StatusUnauthorized, "Unauthorized Access")
}

func Forbidden(c *gin.Context) {
	Message(c, http.StatusForbidden, "Forbidden Access")
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}
