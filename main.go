package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"train-booking/config"
	"train-booking/database"
	"train-booking/handlers"
	"train-booking/logger"
	"train-booking/services"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)
	defer logger.SyncLogger()
	log := logger.GetLogger()

	log.Infow("Starting train booking service", "port", cfg.ServerPort)

	ctx := context.Background()

	if err := database.Connect(ctx, cfg); err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := database.RunMigrations(database.GetDB()); err != nil {
		log.Fatalw("Failed to migrate database", "error", err)
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatalw("Failed to connect to MongoDB", "uri", cfg.MongoURI, "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	rdb := database.NewRedisClient(cfg.RedisAddr)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, listing cache will be bypassed", "addr", cfg.RedisAddr, "error", err)
	}

	var events services.EventPublisher = services.NoopPublisher{}
	if cfg.AMQPURL != "" {
		publisher, err := services.NewAMQPPublisher(cfg.AMQPURL, cfg.BookingExchange)
		if err != nil {
			log.Warnw("Booking events disabled", "error", err)
		} else {
			events = publisher
		}
	}
	defer events.Close()

	catalog := services.NewTrainCatalog(
		cfg.TrainListingURL,
		services.NewRedisSnapshotCache(rdb),
		cfg.TrainSnapshotTTL,
	)
	services.InitTrainCatalog(catalog)
	services.InitBookingService(services.NewBookingService(
		services.NewMongoBookingStore(ctx, mongoClient.Database(cfg.MongoDB)),
		catalog,
		events,
	))
	services.InitAuthService(cfg.JWTSecret, cfg.TokenTTL)
	services.InitAIService(cfg)

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter()

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Infow("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
