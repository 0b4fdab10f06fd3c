package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopease/console-gateway/internal/api/handler"
	"github.com/shopease/console-gateway/internal/api/middleware"
	"github.com/shopease/console-gateway/internal/core/policy"
	"github.com/shopease/console-gateway/internal/core/ports"
	"github.com/shopease/console-gateway/internal/core/service"
)

// Deps carries the constructed collaborators the router wires into handlers.
type Deps struct {
	Sessions    ports.SessionService
	Guard       *service.Guard
	Audit       ports.AuditRecorder
	AuditReader ports.AuditReader
	Redis       *redis.Client
	Mongo       *mongo.Database
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Session lifecycle ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout)
	e.GET("/v1/session", authHandler.Session)
	e.POST("/v1/session/restore", authHandler.Restore)

	// --- Navigation (sidebar payload for the current role) ---
	navHandler := handler.NewNavigationHandler(deps.Sessions)
	e.GET("/v1/navigation", navHandler.Navigation)

	// --- Guarded console pages ---
	pageHandler := handler.NewPageHandler(deps.Sessions)
	guardMW := middleware.Guard(deps.Sessions, deps.Guard, deps.Audit)
	for _, path := range policy.AllPaths() {
		e.GET(path, pageHandler.Page, guardMW)
	}

	// Redirect targets. The login page is also the root.
	e.GET("/", pageHandler.Login)
	e.GET("/unauthorized", pageHandler.Unauthorized)

	// --- Audit trail (component-gated, not path-gated) ---
	auditHandler := handler.NewAuditHandler(deps.AuditReader)
	e.GET("/v1/audit", auditHandler.Recent,
		middleware.GuardComponent(deps.Sessions, deps.Guard, deps.Audit, "AuditTrail"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
