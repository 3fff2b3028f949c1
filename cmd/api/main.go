package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/openpass/ticketing/internal/adapter/codegen"
	"github.com/openpass/ticketing/internal/adapter/handler"
	"github.com/openpass/ticketing/internal/adapter/notifier"
	"github.com/openpass/ticketing/internal/adapter/repository/postgres"
	"github.com/openpass/ticketing/internal/core/ports"
	"github.com/openpass/ticketing/internal/core/services"
	"github.com/openpass/ticketing/internal/platform/config"
	"github.com/openpass/ticketing/internal/platform/database"
	"github.com/openpass/ticketing/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	var notify ports.Notifier = notifier.NewNoop()
	if cfg.AMQP.URL != "" {
		amqpNotifier, err := notifier.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			slog.Warn("broker unavailable, buyer notifications disabled", "error", err)
		} else {
			defer amqpNotifier.Close()
			notify = amqpNotifier
		}
	}

	eventRepo := postgres.NewEventRepository(db)
	typeRepo := postgres.NewTicketTypeRepository(db)
	issuanceRepo := postgres.NewIssuanceRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	codes := codegen.New()

	catalogService := services.NewCatalogService(eventRepo, typeRepo, redisClient)
	issuanceService := services.NewIssuanceService(typeRepo, issuanceRepo, ticketRepo, codes, notify, redisClient)
	fulfillmentService := services.NewFulfillmentService(eventRepo, orderRepo, codes, notify)
	checkInService := services.NewCheckInService(eventRepo, ticketRepo)

	router := handler.NewRouter(
		handler.NewCatalogHandler(catalogService),
		handler.NewCheckoutHandler(issuanceService),
		handler.NewOrderHandler(fulfillmentService),
		handler.NewCheckInHandler(checkInService),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
