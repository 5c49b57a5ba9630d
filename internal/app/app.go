package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/meshram0823/UrbanCart/internal/config"
	"github.com/meshram0823/UrbanCart/internal/event"
	handler "github.com/meshram0823/UrbanCart/internal/handler/http"
	"github.com/meshram0823/UrbanCart/internal/repository/mongodb"
	redisrepo "github.com/meshram0823/UrbanCart/internal/repository/redis"
	"github.com/meshram0823/UrbanCart/internal/service"
	"github.com/meshram0823/UrbanCart/pkg/health"
	pkgkafka "github.com/meshram0823/UrbanCart/pkg/kafka"
)

// App wires together all dependencies and runs the catalog service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	mongo      *mongo.Client
	rdb        *redis.Client
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize MongoDB client.
	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.MongoDB)
	logger.Info("connected to MongoDB", slog.String("database", cfg.MongoDB))

	// Initialize Redis client.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	favouritesRepo := redisrepo.NewFavouritesRepository(rdb)
	eventProducer := event.NewProducer(producer, logger)

	productService := service.NewProductService(productRepo, categoryRepo, eventProducer, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	favouritesService := service.NewFavouritesService(favouritesRepo, productRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("mongodb", func(ctx context.Context) error {
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", producer.Ping)

	// HTTP router.
	router := handler.NewRouter(productService, categoryService, favouritesService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		mongo:      mongoClient,
		rdb:        rdb,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	// Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	// Close Redis client.
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	// Disconnect MongoDB client.
	if err := a.mongo.Disconnect(shutdownCtx); err != nil {
		a.logger.Error("mongodb disconnect error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
