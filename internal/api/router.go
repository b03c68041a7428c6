package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ticketly/ticketing-system/internal/api/handler"
	"github.com/ticketly/ticketing-system/internal/api/middleware"
	"github.com/ticketly/ticketing-system/internal/clock"
	"github.com/ticketly/ticketing-system/internal/core/service"
	"github.com/ticketly/ticketing-system/internal/infrastructure/config"
	mongostore "github.com/ticketly/ticketing-system/internal/infrastructure/db/mongo"
	redisstore "github.com/ticketly/ticketing-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case event lookups skip the cache and hit the
// store directly.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ticketing"))

	// --- Dependencies ---
	clk := clock.NewSystem()

	authRepo := mongostore.NewAuthRepository(db)
	eventRepo := mongostore.NewEventRepository(db)
	ticketRepo := mongostore.NewTicketRepository(db)

	var eventFinder service.EventFinder = eventRepo
	if rdb != nil {
		eventFinder = redisstore.NewCachedEventFinder(eventRepo, rdb, cfg.Redis.EventCacheTTL, log)
	}

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL, clk)
	eventService := service.NewEventService(eventRepo, clk, log)
	ticketService := service.NewTicketService(eventFinder, ticketRepo, clk, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	ticketHandler := handler.NewTicketHandler(ticketService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Event / ticket routes ---
	// Public by default even though the token layer exists; AUTH_PROTECT_API
	// opts a deployment into gating them.
	g := e.Group("")
	if cfg.ProtectAPI {
		g.Use(middleware.Auth(authService))
	}

	g.POST("/events", eventHandler.Create)
	g.GET("/events", eventHandler.List)
	g.GET("/events/:id", eventHandler.Get)
	g.POST("/events/:eventId/tickets", ticketHandler.Purchase)
	g.GET("/tickets/:id", ticketHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
