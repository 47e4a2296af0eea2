// Package router defines how HTTP routes are registered for the API.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Patric420/hotel-management/internal/config"
	"github.com/Patric420/hotel-management/internal/handler"
	"github.com/Patric420/hotel-management/internal/middleware"
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
	Customers *handler.CustomerHandler
	Rooms     *handler.RoomHandler
	Bookings  *handler.BookingHandler
	Payments  *handler.PaymentHandler
	Staff     *handler.StaffHandler
	Services  *handler.ServiceHandler
	Dashboard *handler.DashboardHandler
}

// Register mounts all routes on the Echo instance. The rate limiter
// wraps the whole /v1 surface; the Redis response cache wraps only the
// read-heavy list and dashboard GETs. Both middlewares degrade to
// no-ops when rdb is nil, so the API runs without Redis.
func Register(e *echo.Echo, h Handlers, db *sql.DB, rdb *redis.Client) {
	// Probes and metrics stay outside the versioned, rate-limited group
	// so monitoring keeps working when clients exhaust their buckets.
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cached := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	customers := v1.Group("/customers")
	customers.GET("", h.Customers.List, cached)
	customers.GET("/:id", h.Customers.Get)
	customers.POST("", h.Customers.Create)
	customers.PUT("/:id", h.Customers.Update)
	customers.DELETE("/:id", h.Customers.Delete)

	rooms := v1.Group("/rooms")
	// The static "available" segment must be registered before "/:id" so
	// Echo does not try to parse it as a room id.
	rooms.GET("/available", h.Rooms.Available)
	rooms.GET("", h.Rooms.List, cached)
	rooms.GET("/:id", h.Rooms.Get)
	rooms.POST("", h.Rooms.Create)
	rooms.PUT("/:id", h.Rooms.Update)
	rooms.DELETE("/:id", h.Rooms.Delete)

	bookings := v1.Group("/bookings")
	bookings.GET("", h.Bookings.List)
	bookings.GET("/:id", h.Bookings.Get)
	bookings.POST("", h.Bookings.Create)
	bookings.PUT("/:id", h.Bookings.Update)
	bookings.PATCH("/:id/status", h.Bookings.UpdateStatus)
	bookings.DELETE("/:id", h.Bookings.Delete)

	payments := v1.Group("/payments")
	payments.GET("", h.Payments.List, cached)
	payments.GET("/:id", h.Payments.Get)
	payments.POST("", h.Payments.Create)
	payments.PUT("/:id", h.Payments.Update)
	payments.DELETE("/:id", h.Payments.Delete)

	staff := v1.Group("/staff")
	staff.GET("", h.Staff.List, cached)
	staff.GET("/:id", h.Staff.Get)
	staff.POST("", h.Staff.Create)
	staff.PUT("/:id", h.Staff.Update)
	staff.DELETE("/:id", h.Staff.Delete)

	services := v1.Group("/services")
	services.GET("", h.Services.List, cached)
	services.GET("/:id", h.Services.Get)
	services.POST("", h.Services.Create)
	services.PUT("/:id", h.Services.Update)
	services.DELETE("/:id", h.Services.Delete)
	services.POST("/apply-discount", h.Services.ApplyDiscount)

	v1.GET("/dashboard", h.Dashboard.Stats, cached)
}
