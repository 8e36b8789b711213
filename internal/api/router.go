package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/screenhive/platform/internal/api/handler"
	"github.com/screenhive/platform/internal/api/middleware"
	"github.com/screenhive/platform/internal/chat"
	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
	"github.com/screenhive/platform/internal/core/service"
)

// Deps carries everything the router needs to wire handlers and gates.
type Deps struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Directory ports.UserDirectory
	Tokens    *service.TokenService
	Hierarchy *domain.Hierarchy
	Accounts  ports.AccountService
	Watchlist ports.WatchlistService
	Forum     ports.ForumService
	Chat      *chat.Server
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("screenhive"))

	// The authentication gate runs once per request; anonymous requests pass
	// through and are only rejected later by RequireAuthority.
	e.Use(middleware.Authenticate(d.Tokens, d.Directory, d.Hierarchy))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Accounts)
	memberHandler := handler.NewMemberHandler(d.Accounts)
	watchlistHandler := handler.NewWatchlistHandler(d.Watchlist)
	forumHandler := handler.NewForumHandler(d.Forum)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Member routes ---
	e.GET("/members/me", memberHandler.Me, middleware.RequireAuthority(domain.RoleMember))

	// --- Watchlist routes (MEMBER authority) ---
	wl := e.Group("/watchlists", middleware.RequireAuthority(domain.RoleMember))
	wl.GET("", watchlistHandler.List)
	wl.POST("", watchlistHandler.Add)
	wl.DELETE("/:id", watchlistHandler.Remove)

	// --- Forum routes ---
	e.GET("/forum/threads", forumHandler.List)
	e.POST("/forum/threads", forumHandler.Create, middleware.RequireAuthority(domain.RoleVerifiedMember))
	e.DELETE("/forum/threads/:id", forumHandler.Delete, middleware.RequireAuthority(domain.RoleModerator))

	// --- Chat (STOMP over WebSocket; handshake does its own authentication) ---
	e.GET("/ws/chat", d.Chat.Handle)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
