package handler

import (
	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/adapter/metrics"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20 // 1 MB

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	WalletSvc      ports.WalletService
	PurchaseSvc    ports.PurchaseService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = no /metrics endpoint
	CORSOrigins    []string
	Mode           string // gin mode; empty means release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORS(deps.CORSOrigins))
	r.Use(middleware.MaxBodySize(maxRequestBody))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/", Root)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound())
	})

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")
	jwtAuth := middleware.JWTAuth(deps.TokenSvc)

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := api.Group("/auth")
	{
		auth.POST("/register", rl(middleware.GroupAuthRegister), authHandler.Register)
		auth.POST("/login", rl(middleware.GroupAuthLogin), authHandler.Login)
		auth.POST("/google", rl(middleware.GroupAuthLogin), authHandler.GoogleLogin)
		auth.GET("/me", jwtAuth, rl(middleware.GroupWalletRead), authHandler.Me)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	wallet := api.Group("/wallet", jwtAuth)
	{
		wallet.GET("", rl(middleware.GroupWalletRead), walletHandler.GetWallet)
		wallet.GET("/transactions", rl(middleware.GroupWalletRead), walletHandler.Transactions)
		wallet.GET("/tests/:testId/status", rl(middleware.GroupWalletRead), walletHandler.UnlockStatus)
		wallet.POST("/gold/add", rl(middleware.GroupWalletEarn), walletHandler.EarnGold)
		wallet.POST("/exchange", rl(middleware.GroupWalletWrite), walletHandler.Exchange)
		wallet.POST("/tests/unlock", rl(middleware.GroupWalletWrite), walletHandler.UnlockTest)

		wallet.POST("/google-play/verify", rl(middleware.GroupPurchase), purchaseHandler.VerifyGooglePlay)
		wallet.POST("/razorpay/create-order", rl(middleware.GroupPurchase), purchaseHandler.CreateRazorpayOrder)
		wallet.POST("/razorpay/verify-payment", rl(middleware.GroupPurchase), purchaseHandler.VerifyRazorpayPayment)
	}

	return r
}
