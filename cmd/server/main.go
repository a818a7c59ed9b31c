package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/config"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/database"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/handler"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/middleware"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/queue"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/repository"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/router"
	"github.com/Katielly-Scherbatsky/api-cinema-ingresso/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Event publishing degrades to a no-op when no broker is configured.
	var events service.EventSink
	if cfg.RabbitMQURL != "" {
		events = queue.NewPublisher(cfg.RabbitMQURL, logger)
		go queue.StartSalesConsumer(cfg.RabbitMQURL, logger)
	} else {
		logger.Info("RABBITMQ_URL not set, event publishing disabled")
	}

	customers := repository.NewCustomerRepo(db)
	movies := repository.NewMovieRepo(db)
	rooms := repository.NewRoomRepo(db)
	seats := repository.NewSeatRepo(db)
	sessions := repository.NewSessionRepo(db)
	tickets := repository.NewTicketRepo(db)
	sales := repository.NewSaleRepo(db)

	h := router.Handlers{
		Customers: handler.NewCustomerHandler(service.NewCustomerService(customers)),
		Movies:    handler.NewMovieHandler(service.NewMovieService(movies)),
		Rooms:     handler.NewRoomHandler(service.NewRoomService(rooms)),
		Seats:     handler.NewSeatHandler(service.NewSeatService(seats, rooms)),
		Sessions:  handler.NewSessionHandler(service.NewSessionService(sessions, rooms, movies)),
		Tickets:   handler.NewTicketHandler(service.NewTicketService(tickets, sessions, seats, events)),
		Sales:     handler.NewSaleHandler(service.NewSaleService(sales, customers, tickets, events)),
	}

	// Response caching degrades to a pass-through when Redis is unreachable.
	cacheCfg := config.LoadCacheConfig()
	rdb := config.NewRedisClient()
	if rdb == nil && cacheCfg.Enabled {
		logger.Warn("redis unreachable, response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, h, middleware.NewRedisCache(cacheCfg, rdb))

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newLogger picks the zap preset matching the environment.
func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
