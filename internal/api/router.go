package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/newsdesk/newsroom/internal/api/handler"
	"github.com/newsdesk/newsroom/internal/api/middleware"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
	"github.com/newsdesk/newsroom/internal/infrastructure/http/handlers"
)

// MaxBodySize caps request bodies in both wire formats.
const MaxBodySize = "1M"

// Dependencies groups everything the router needs to build its handlers.
type Dependencies struct {
	News     ports.NewsFacade
	Comments ports.CommentFacade
	Users    ports.UserFacade
	Auth     ports.AuthFacade

	// Tokens and Accounts back the Auth middleware.
	Tokens   middleware.TokenParser
	Accounts middleware.UserLookup

	// Backends are pinged by the readiness probe, keyed by name.
	Backends map[string]handlers.Pinger

	// Registry receives the HTTP metrics and serves /metrics. Nil means the
	// default prometheus registry, which also holds the domain counters.
	Registry *prometheus.Registry

	MaxPageSize int
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.BodyLimit(MaxBodySize))
	e.Use(middleware.RequestLogger(deps.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "newsroom",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Ops endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Backends)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are backends up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Authenticated API ---
	api := e.Group("/api", middleware.Auth(deps.Tokens, deps.Accounts, deps.Auth))
	editors := middleware.RBAC(domain.RoleAdmin, domain.RoleJournalist)
	anyone := middleware.RBAC(domain.AllRoles...)
	admins := middleware.RBAC(domain.RoleAdmin)

	newsHandler := handler.NewNewsHandler(deps.News, deps.MaxPageSize)
	news := api.Group("/news")
	news.GET("", newsHandler.List, anyone)
	news.GET("/:id", newsHandler.Get, anyone)
	news.POST("", newsHandler.Create, editors)
	news.PUT("/:id", newsHandler.Update, editors)
	news.DELETE("/:id", newsHandler.Delete, editors)

	commentHandler := handler.NewCommentHandler(deps.Comments, deps.MaxPageSize)
	comments := api.Group("/comment", anyone)
	comments.GET("", commentHandler.List)
	comments.GET("/:id", commentHandler.Get)
	comments.POST("", commentHandler.Create)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	userHandler := handler.NewUserHandler(deps.Users)
	users := api.Group("/user", admins)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
