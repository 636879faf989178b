package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"greenvilla/config"
	"greenvilla/database"
	bookingRepo "greenvilla/database/repository/booking"
	reviewRepo "greenvilla/database/repository/review"
	roomRepo "greenvilla/database/repository/room"
	"greenvilla/handlers"
	"greenvilla/middleware"
	"greenvilla/routes"
	"greenvilla/services/booking"
	"greenvilla/services/session"
	"greenvilla/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const healthInterval = 60 * time.Second

// setupRevocations connects the session revocation store. An unreachable
// Redis is not fatal: lookups fail open until it comes back.
func setupRevocations(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, session.RevocationStore) {
	redisClient := utils.NewSessionCacheClient(cfg)
	if redisClient == nil {
		logger.Warn("REDIS_ADDR not set; logout clears the cookie without revoking the token")
		return nil, nil
	}
	if err := utils.PingRedis(ctx, redisClient); err != nil {
		logger.Warn("Redis unreachable at startup; revocation checks fail open until it recovers",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
	} else {
		logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
	}
	return redisClient, session.NewRedisRevocationStore(redisClient)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("main: MongoDB unavailable", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
	db := mongoClient.Database(cfg.DatabaseName)

	redisClient, revocations := setupRevocations(ctx, cfg, logger)

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(ctx, db, logger)
	reviews := reviewRepo.NewMongoReviewRepo(db)

	// services.
	issuer := session.NewIssuer(cfg.JWTSecret, cfg.SessionTTL, revocations, logger)
	bookingService := &booking.DefaultBookingService{Repo: bookings, Logger: logger}

	monitor := utils.NewHealthMonitor(mongoClient, redisClient, healthInterval)
	monitor.Start(ctx)

	handlerBundle := handlers.NewHandlerBundle(
		middleware.SessionAuthMiddleware(issuer),
		handlers.NewHealthHandler(monitor),
		handlers.NewSessionHandler(issuer, session.CookiePolicyFor(cfg.IsProduction())),
		handlers.NewRoomHandler(rooms),
		handlers.NewBookingHandler(bookingService),
		handlers.NewReviewHandler(reviews),
	)

	router := gin.New()
	if err := routes.RegisterRoutes(router, handlerBundle, cfg, logger); err != nil {
		logger.Fatal("main: failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Green Villa server listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.Disconnect(mongoClient, 5*time.Second); err != nil {
		logger.Error("main: MongoDB disconnect failed", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("main: server stopped gracefully")
}
