package handler

import (
	"wallet-api/internal/adapter/http/middleware"
	redisStore "wallet-api/internal/adapter/storage/redis"
	"wallet-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	AuthSvc        ports.AuthService
	UserSvc        ports.UserService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", rl("auth_signup"), authHandler.Signup)
		auth.POST("/signin", rl("auth_signin"), authHandler.Signin)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	userHandler := NewUserHandler(deps.UserSvc)
	users := r.Group("/users", jwtAuth, rl("users"))
	{
		users.GET("/me", userHandler.GetMe)
		users.PATCH("", userHandler.EditMe)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := r.Group("/wallets", jwtAuth)
	{
		wallets.GET("", rl("wallets_read"), walletHandler.List)
		wallets.POST("", rl("wallets_write"), walletHandler.Create)
		wallets.GET("/:id", rl("wallets_read"), walletHandler.GetByID)
		wallets.PATCH("/:id", rl("wallets_write"), walletHandler.EditByID)
		wallets.DELETE("/:id", rl("wallets_write"), walletHandler.DeleteByID)
	}

	return r
}
