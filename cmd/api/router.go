package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booklend-backend/internal/domains/user"
	"booklend-backend/internal/shared/middleware"
	"booklend-backend/pkg/container"
)

// SetupRouter mounts the API surface. Gates compose left to right:
// authentication first, then the role or self check.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.RequireAuthenticated(c.Verifier)
	admin := middleware.RequireRole(c.UserService, string(user.RoleAdmin))
	librarian := middleware.RequireRole(c.UserService, string(user.RoleLibrarian))
	self := middleware.RequireSelf("email")

	router.GET("/health", healthHandler(c))

	// Users
	router.GET("/users", auth, admin, c.UserHandler.List)
	router.POST("/users", c.UserHandler.Register)
	router.PATCH("/users/:id", auth, c.UserHandler.Patch)
	router.GET("/users/:email/role", c.UserHandler.Role)

	// Books
	router.POST("/books", auth, librarian, c.BookHandler.Create)
	router.GET("/books-library", auth, librarian, self, c.BookHandler.ListByAuthor)
	router.GET("/latest-books", c.BookHandler.Latest)
	router.GET("/all-books", c.BookHandler.Search)
	router.GET("/all-books-admin", auth, admin, c.BookHandler.AdminSearch)
	router.GET("/book-details/:id", auth, c.BookHandler.Detail)
	router.GET("/selected-book/:id", auth, librarian, c.BookHandler.Detail)
	router.PATCH("/book-details/:id", auth, librarian, c.BookHandler.Update)
	router.PATCH("/books", auth, admin, c.BookHandler.UpdateStatus)
	router.DELETE("/books/:id", auth, admin, c.BookHandler.Delete)

	// Orders
	router.POST("/book-orders", auth, c.OrderHandler.Place)
	router.GET("/my-orders", auth, self, c.OrderHandler.ListMine)
	router.GET("/orders", auth, librarian, self, c.OrderHandler.ListForLibrarian)
	router.PATCH("/orders/:id", auth, librarian, c.OrderHandler.Advance)

	// Payments
	router.POST("/payment-checkout-sessions", auth, c.PaymentHandler.CreateCheckoutSession)
	router.PATCH("/payment-success", auth, c.PaymentHandler.Confirm)
	router.GET("/payments-history", auth, self, c.PaymentHandler.History)

	// Reviews
	router.POST("/reviews", auth, c.ReviewHandler.Submit)
	router.GET("/books/:id/reviews", c.ReviewHandler.ListByBook)

	// Wishlist
	router.POST("/wishlist", auth, c.WishlistHandler.Add)
	router.GET("/wishlist", auth, self, c.WishlistHandler.ListMine)
	router.DELETE("/wishlist/:id", auth, c.WishlistHandler.Remove)

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
