package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skywings/booking-system/docs"
	"github.com/skywings/booking-system/internal/api/handler"
	"github.com/skywings/booking-system/internal/api/middleware"
	"github.com/skywings/booking-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis may be
// nil: the readiness probe then reports them as unavailable while every
// route keeps working against local state.
type Dependencies struct {
	Flights  ports.FlightService
	Bookings ports.BookingService
	Users    ports.UserService
	Auth     ports.AuthService

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skywings"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	flightHandler := handler.NewFlightHandler(deps.Flights)
	bookingHandler := handler.NewBookingHandler(deps.Bookings, deps.Flights)
	userHandler := handler.NewUserHandler(deps.Users)
	dashboardHandler := handler.NewDashboardHandler(deps.Flights, deps.Bookings, deps.Users)

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC("Admin")

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/mock-session", authHandler.CreateMockSession)
	e.GET("/auth/session", authHandler.Session)
	e.DELETE("/auth/session", authHandler.ClearSession)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authRequired)

	v1.GET("/flights", flightHandler.List)
	v1.GET("/flights/stats", flightHandler.Stats, adminOnly)
	v1.POST("/flights", flightHandler.Create, adminOnly)
	v1.PATCH("/flights/:id", flightHandler.Update, adminOnly)
	v1.DELETE("/flights/:id", flightHandler.Delete, adminOnly)

	v1.GET("/bookings", bookingHandler.List)
	v1.POST("/bookings", bookingHandler.Create)
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel)
	v1.POST("/bookings/:id/status", bookingHandler.SetStatus)
	v1.POST("/bookings/reconcile", bookingHandler.Reconcile, adminOnly)

	v1.GET("/users", userHandler.List, adminOnly)
	v1.POST("/users", userHandler.Create, adminOnly)
	v1.PATCH("/users/:id", userHandler.Update, adminOnly)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)
	v1.POST("/users/reload", userHandler.Reload, adminOnly)

	v1.GET("/dashboard", dashboardHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
