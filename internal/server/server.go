// Package server contains the HTTP handlers and routes for the application's API.
package server

import (
	"context"
	"fmt"
	"time"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/middleware"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides the HTTP handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository

	userService         *service.UserService
	postService         *service.PostService
	commentService      *service.CommentService
	relationshipService *service.RelationshipService
	likeService         *service.LikeService
	feedService         *service.FeedService
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Tests use this to inject fakes.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	relRepo := repository.NewRelationshipRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	cascadeRepo := repository.NewCascadeRepository(db)

	return &Server{
		config:              cfg,
		db:                  db,
		redis:               redisClient,
		promMiddleware:      fiberprometheus.New("ripple-api"),
		userRepo:            userRepo,
		commentRepo:         commentRepo,
		userService:         service.NewUserService(userRepo, cascadeRepo),
		postService:         service.NewPostService(postRepo, cascadeRepo),
		commentService:      service.NewCommentService(commentRepo, postRepo, cascadeRepo),
		relationshipService: service.NewRelationshipService(relRepo, userRepo),
		likeService:         service.NewLikeService(likeRepo),
		feedService:         service.NewFeedService(relRepo, postRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID
	app.Use(requestid.New())

	// OpenTelemetry server spans; sets traceID in locals before the
	// context middleware copies it into the request context
	app.Use(middleware.TracingMiddleware())

	// Propagate request ID, trace ID and user ID into the request context
	// for logging
	app.Use(middleware.ContextMiddleware())

	// Sentry error tracking, active only when a DSN is configured
	if s.config.SentryDSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic: true,
		}))
	}

	// Prometheus HTTP metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured request logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global in-process rate limit (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// Preflight requests are never rate limited.
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Prometheus scrape endpoint
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes, rate limited per IP via Redis
	auth := app.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Everything below requires a verified identity.
	protected := app.Group("", middleware.AuthRequired)

	// User routes. Specific paths register before the generic /:id ones.
	users := protected.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/me", s.GetMyProfile)
	users.Get("/my-followers", s.GetMyFollowers)
	users.Get("/my-followings", s.GetMyFollowings)
	users.Get("/:id/my-follow-status", s.GetMyFollowStatus)
	users.Post("/:id/follow-user", middleware.RateLimit(s.redis, 30, time.Minute, "follow"), s.FollowUser)
	users.Delete("/:id/unfollow-user", s.UnfollowUser)
	users.Get("/:id/my-block-status", s.GetMyBlockStatus)
	users.Post("/:id/block-user", s.BlockUser)
	users.Delete("/:id/unblock-user", s.UnblockUser)
	users.Get("/:id/followers", s.GetUserFollowers)
	users.Get("/:id/followings", s.GetUserFollowings)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	// Post routes, with nested comments and like toggles.
	posts := protected.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/my-feed", s.GetMyFeed)
	posts.Post("/", middleware.RateLimit(s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Get("/:id/like", s.GetPostLikeStatus)
	posts.Post("/:id/like/toggle", s.TogglePostLike)
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", middleware.RateLimit(s.redis, 15, time.Minute, "create_comment"), s.CreateComment)
	posts.Get("/:id/comments/:commentId", s.GetComment)
	posts.Put("/:id/comments/:commentId", s.UpdateComment)
	posts.Delete("/:id/comments/:commentId", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Comment like routes addressed by comment id alone; the post is
	// resolved from the comment itself.
	comments := protected.Group("/comments")
	comments.Get("/:commentId/like", s.GetCommentLikeStatus)
	comments.Post("/:commentId/like/toggle", s.ToggleCommentLike)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	cache.Close()
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
