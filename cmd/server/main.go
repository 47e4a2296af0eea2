package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Patric420/hotel-management/internal/availability"
	"github.com/Patric420/hotel-management/internal/config"
	"github.com/Patric420/hotel-management/internal/database"
	"github.com/Patric420/hotel-management/internal/handler"
	"github.com/Patric420/hotel-management/internal/metrics"
	"github.com/Patric420/hotel-management/internal/queue"
	"github.com/Patric420/hotel-management/internal/repository"
	"github.com/Patric420/hotel-management/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, caching and rate limiting disabled")
	}

	metrics.Register()
	go queue.StartBookingConsumer(log.Logger)

	customers := repository.NewCustomerRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	staff := repository.NewStaffRepo(db)
	services := repository.NewServiceRepo(db)
	dashboard := repository.NewDashboardRepo(db)
	resolver := availability.NewResolver(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	router.Register(e, router.Handlers{
		Customers: handler.NewCustomerHandler(customers),
		Rooms:     handler.NewRoomHandler(rooms, resolver),
		Bookings:  handler.NewBookingHandler(bookings, rooms, resolver),
		Payments:  handler.NewPaymentHandler(payments),
		Staff:     handler.NewStaffHandler(staff),
		Services:  handler.NewServiceHandler(services),
		Dashboard: handler.NewDashboardHandler(dashboard),
	}, db, rdb)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
