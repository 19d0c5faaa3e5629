package main

import (
	"blogapi/internal/adapters/httpapi"
	"blogapi/internal/adapters/logpublisher"
	memoryadapter "blogapi/internal/adapters/memory"
	redisadapter "blogapi/internal/adapters/redis"
	"blogapi/internal/config"
	"blogapi/internal/core/post"
	postapp "blogapi/internal/core/post/service"
	eventPort "blogapi/internal/ports/event"
	"blogapi/internal/workers"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	dotenvLoaded := config.LoadDotEnv() // بارگذاری تنظیمات از .env
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() // flush buffer

	if !dotenvLoaded {
		logger.Info("No .env file found, using system environment variables")
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	strategy, err := memoryadapter.ParseIDStrategy(cfg.PostIDStrategy)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// اتصال به Redis (اختیاری)
	var redisClient *goredis.Client
	var publisher eventPort.EventPublisher
	if cfg.RedisAddr != "" {
		redisClient, err = config.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal("Redis unavailable", zap.Error(err))
		}
		logger.Info("✅ Connected to Redis", zap.String("addr", cfg.RedisAddr), zap.String("channel", cfg.RedisChannel))
		publisher = redisadapter.NewEventPublisherRedis(redisClient, cfg.RedisChannel, cfg.RedisFeedKey, cfg.RedisFeedSize, logger)
	} else {
		logger.Info("REDIS_ADDR not set, post events are only logged")
		publisher = logpublisher.NewEventPublisherLog(logger)
	}

	postRepo := memoryadapter.NewPostRepositoryMemory(strategy, post.Seed()) // آداپتر خروجی
	eventWorker := workers.NewEventWorker(
		publisher,
		cfg.EventBufferSize,
		cfg.EventBatchSize,
		cfg.EventFlushInterval,
		logger,
	) // صف رویدادها
	postSvc := postapp.NewPostService(postRepo, eventWorker, logger) // یوزکیس/سرویس
	r := httpapi.SetupRoutes(postSvc, logger, cfg.CORSOrigins)       // تزریق یوزکیس به آداپتر ورودی
	// -------------------------------------------

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	// اجرای worker در پس‌زمینه
	go func() {
		defer wg.Done()
		eventWorker.Run(workerCtx)
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("App is running...", zap.String("addr", srv.Addr), zap.Int("seedPosts", postRepo.Count()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start:", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during server shutdown:", zap.Error(err))
	}

	// worker بعد از بسته شدن سرور متوقف می‌شود تا رویدادهای آخر هم ارسال شوند
	cancelWorker()
	wg.Wait()

	closeResources(logger, redisClient)
}

// closeResources بستن اتصال به Redis
func closeResources(logger *zap.Logger, redisClient *goredis.Client) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}
}
