// Package container wires the full dependency graph. Everything is
// constructed once at startup and injected; nothing reaches for globals.
package container

import (
	"context"
	"fmt"
	"time"

	"booklend-backend/internal/config"
	"booklend-backend/internal/identity"
	infraCache "booklend-backend/internal/infrastructure/cache"
	"booklend-backend/internal/infrastructure/database"
	"booklend-backend/pkg/cache"
	"booklend-backend/pkg/logger"

	"booklend-backend/internal/domains/book"
	bookHandler "booklend-backend/internal/domains/book/handler"
	bookRepo "booklend-backend/internal/domains/book/repository"
	bookService "booklend-backend/internal/domains/book/service"

	"booklend-backend/internal/domains/order"
	orderHandler "booklend-backend/internal/domains/order/handler"
	orderRepo "booklend-backend/internal/domains/order/repository"
	orderService "booklend-backend/internal/domains/order/service"

	"booklend-backend/internal/domains/payment"
	paymentHandler "booklend-backend/internal/domains/payment/handler"
	"booklend-backend/internal/domains/payment/processor"
	processorMock "booklend-backend/internal/domains/payment/processor/mock"
	processorStripe "booklend-backend/internal/domains/payment/processor/stripe"
	paymentRepo "booklend-backend/internal/domains/payment/repository"
	paymentService "booklend-backend/internal/domains/payment/service"

	"booklend-backend/internal/domains/review"
	reviewHandler "booklend-backend/internal/domains/review/handler"
	reviewRepo "booklend-backend/internal/domains/review/repository"
	reviewService "booklend-backend/internal/domains/review/service"

	"booklend-backend/internal/domains/user"
	userHandler "booklend-backend/internal/domains/user/handler"
	userRepo "booklend-backend/internal/domains/user/repository"
	userService "booklend-backend/internal/domains/user/service"

	"booklend-backend/internal/domains/wishlist"
	wishlistHandler "booklend-backend/internal/domains/wishlist/handler"
	wishlistRepo "booklend-backend/internal/domains/wishlist/repository"
	wishlistService "booklend-backend/internal/domains/wishlist/service"
)

// Container is the root of the dependency graph. Initialization order is
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config    *config.Config
	DB        *database.Mongo
	Cache     cache.Cache
	Verifier  identity.Verifier
	Processor processor.Processor

	UserRepo     user.Repository
	BookRepo     book.Repository
	OrderRepo    order.Repository
	PaymentRepo  payment.Repository
	ReviewRepo   review.Repository
	WishlistRepo wishlist.Repository

	UserService     user.Service
	BookService     book.Service
	OrderService    order.Service
	PaymentService  payment.Service
	ReviewService   review.Service
	WishlistService wishlist.Service

	UserHandler     *userHandler.UserHandler
	BookHandler     *bookHandler.BookHandler
	OrderHandler    *orderHandler.OrderHandler
	PaymentHandler  *paymentHandler.PaymentHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	WishlistHandler *wishlistHandler.WishlistHandler

	redis *infraCache.Redis
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"auth_mode":   cfg.Auth.Mode,
	})
	return c, nil
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewMongo(c.Config.Mongo)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mongo health check: %w", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	c.DB = db

	// A missing Redis host is not an error. The role cache degrades to an
	// in-process map.
	if c.Config.Redis.Host != "" {
		redis := infraCache.NewRedis(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := redis.Ping(ctx); err != nil {
			logger.Error("redis unreachable, using in-memory cache", err)
			c.Cache = cache.NewMemory()
		} else {
			c.redis = redis
			c.Cache = redis
		}
	} else {
		c.Cache = cache.NewMemory()
	}

	switch c.Config.Auth.Mode {
	case "firebase":
		verifier, err := identity.NewFirebaseVerifier(ctx, c.Config.Auth.FirebaseKeyBase64)
		if err != nil {
			return fmt.Errorf("init firebase verifier: %w", err)
		}
		c.Verifier = verifier
	default:
		c.Verifier = identity.NewJWTVerifier(c.Config.Auth.JWTSecret)
	}

	// Without a Stripe secret (local development) checkout runs against
	// the in-memory processor.
	if c.Config.Stripe.Secret != "" {
		c.Processor = processorStripe.NewClient(c.Config.Stripe.Secret, c.Config.Stripe.SiteDomain)
	} else {
		logger.Info("stripe secret not set, using mock payment processor", nil)
		c.Processor = processorMock.NewProcessor()
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewMongoRepository(c.DB)
	c.BookRepo = bookRepo.NewMongoRepository(c.DB)
	c.OrderRepo = orderRepo.NewMongoRepository(c.DB)
	c.PaymentRepo = paymentRepo.NewMongoRepository(c.DB)
	c.ReviewRepo = reviewRepo.NewMongoRepository(c.DB)
	c.WishlistRepo = wishlistRepo.NewMongoRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.Cache)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.OrderService = orderService.NewOrderService(c.OrderRepo)
	c.PaymentService = paymentService.NewPaymentService(c.PaymentRepo, c.Processor, c.Config.Stripe.Currency)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.OrderRepo)
	c.WishlistService = wishlistService.NewWishlistService(c.WishlistRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.WishlistHandler = wishlistHandler.NewWishlistHandler(c.WishlistService)
}

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup(ctx context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			return fmt.Errorf("close mongo: %w", err)
		}
	}
	return nil
}
