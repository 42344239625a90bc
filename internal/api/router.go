package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lia-nails/salon-system/internal/api/handler"
	"github.com/lia-nails/salon-system/internal/api/middleware"
	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/service"
	mongodb "github.com/lia-nails/salon-system/internal/infrastructure/db/mongo"
	"github.com/lia-nails/salon-system/internal/infrastructure/security"
)

// Config carries the identity settings the router needs to wire the auth
// stack.
type Config struct {
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	PasswordPolicy domain.PasswordPolicy
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The guard chain is fixed here at construction time: the authentication
// middleware wraps the whole protected group and role checks are attached
// per route, so authorization can never run before authentication.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Dependencies ---
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authRepo := mongodb.NewAuthRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(authRepo, hasher, tokens, cfg.PasswordPolicy, log))
	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo, log))
	catalogHandler := handler.NewCatalogHandler(service.NewCatalogService(catalogRepo, log))
	clientHandler := handler.NewClientHandler(service.NewClientService(clientRepo, log))
	appointmentHandler := handler.NewAppointmentHandler(service.NewAppointmentService(appointmentRepo, catalogRepo, log))
	paymentHandler := handler.NewPaymentHandler(service.NewPaymentService(paymentRepo, appointmentRepo, log))

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	anyRole := middleware.RequireRoles()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected API ---
	v1 := e.Group("/v1", authenticated)

	v1.GET("/employees", employeeHandler.List, anyRole)
	v1.GET("/employees/:id", employeeHandler.Get, anyRole)
	v1.POST("/employees", employeeHandler.Create, adminOnly)
	v1.PUT("/employees/:id", employeeHandler.Update, adminOnly)
	v1.DELETE("/employees/:id", employeeHandler.Deactivate, adminOnly)

	v1.GET("/services", catalogHandler.List, anyRole)
	v1.GET("/services/:id", catalogHandler.Get, anyRole)
	v1.POST("/services", catalogHandler.Create, adminOnly)
	v1.PUT("/services/:id", catalogHandler.Update, adminOnly)
	v1.DELETE("/services/:id", catalogHandler.Deactivate, adminOnly)

	v1.GET("/clients", clientHandler.Search, anyRole)
	v1.GET("/clients/:id", clientHandler.Get, anyRole)
	v1.POST("/clients", clientHandler.Create, anyRole)
	v1.PUT("/clients/:id", clientHandler.Update, anyRole)
	v1.POST("/clients/:id/notes", clientHandler.AddNote, anyRole)

	v1.GET("/appointments", appointmentHandler.List, anyRole)
	v1.GET("/appointments/:id", appointmentHandler.Get, anyRole)
	v1.POST("/appointments", appointmentHandler.Create, anyRole)
	v1.PATCH("/appointments/:id/status", appointmentHandler.Transition, anyRole)

	v1.GET("/payments", paymentHandler.List, adminOnly)
	v1.POST("/payments", paymentHandler.Record, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
