package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen-service/internal/auth"
	"kitchen-service/internal/cache"
	"kitchen-service/internal/config"
	"kitchen-service/internal/database"
	"kitchen-service/internal/events"
	"kitchen-service/internal/handlers"
	"kitchen-service/internal/kafka"
	"kitchen-service/internal/repository"
	"kitchen-service/internal/services"
	"kitchen-service/pkg/logger"
	"kitchen-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "kitchen-service/docs" // Import docs for Swagger
)

// @title           Kitchen Service API
// @version         1.0
// @description     Inventory, recipe, order and finished-goods management for a restaurant kitchen.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("Starting kitchen service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver),
		zap.Bool("strict_status_transitions", cfg.StrictStatusTransitions),
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, closeStorage, err := openRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStorage()

	appCache := cache.NewCache(cfg, appLogger)
	defer appCache.Close()
	cacheTTL := cache.TTL(cfg.CacheTTL)
	invalidator := kafka.NewCacheInvalidator(appCache, appLogger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Events go to Kafka when enabled; the consumer group drops stale cache
	// entries. Without Kafka the invalidator listens on the in-process bus.
	var eventBus events.EventPublisher
	if cfg.UseKafka {
		appLogger.Info("Kafka configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_orders", cfg.KafkaTopicOrders),
			zap.String("topic_stock", cfg.KafkaTopicStock),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
		publisher, err := events.NewKafkaEventPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create Kafka publisher", zap.Error(err))
		}
		defer publisher.Close()
		eventBus = publisher

		consumer, err := kafka.NewConsumer(cfg, invalidator, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create Kafka consumer", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Start(ctx); err != nil {
				appLogger.Error("Kafka consumer stopped", zap.Error(err))
			}
		}()
	} else {
		bus := events.NewInMemoryEventPublisher(appLogger)
		bus.Subscribe(invalidator.Subscriber())
		eventBus = bus
	}

	users, err := auth.NewSeededUserStore(cfg.AdminPassword, cfg.StaffPassword, cfg.ViewerPassword)
	if err != nil {
		appLogger.Fatal("Failed to seed users", zap.Error(err))
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute, appLogger)

	orderService := services.NewOrderService(repos.orders, repos.recipes, repos.inventory, repos.goods, eventBus, appLogger,
		services.WithStrictTransitions(cfg.StrictStatusTransitions),
	)
	inventoryService := services.NewInventoryService(repos.inventory, appCache, cacheTTL, eventBus, appLogger)
	recipeService := services.NewRecipeService(repos.recipes, repos.inventory, appLogger)
	goodsService := services.NewFinishedGoodsService(repos.goods, repos.recipes, eventBus, appLogger)
	dashboardService := services.NewDashboardService(repos.orders, repos.inventory, repos.goods, appCache, cacheTTL, appLogger)

	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthCheck)
	handlers.RegisterRoutes(v1, handlers.Handlers{
		Auth:          auth.NewAuthHandler(jwtManager, users, appLogger),
		Orders:        handlers.NewOrderHandler(orderService, appLogger),
		Inventory:     handlers.NewInventoryHandler(inventoryService, appLogger),
		Recipes:       handlers.NewRecipeHandler(recipeService, appLogger),
		FinishedGoods: handlers.NewFinishedGoodsHandler(goodsService, appLogger),
		Dashboard:     handlers.NewDashboardHandler(dashboardService, appLogger),
	}, handlers.RouteConfig{
		JWT:            jwtManager,
		Idempotency:    appCache,
		IdempotencyTTL: time.Duration(cfg.IdempotencyTTLSeconds) * time.Second,
		Logger:         appLogger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

type repositories struct {
	inventory repository.InventoryRepository
	recipes   repository.RecipeRepository
	orders    repository.OrderRepository
	goods     repository.FinishedGoodsRepository
}

func openRepositories(cfg *config.Config, log *zap.Logger) (repositories, func(), error) {
	if cfg.StorageDriver != "sqlite" {
		log.Info("Using in-memory storage")
		return repositories{
			inventory: repository.NewInMemoryInventoryRepository(),
			recipes:   repository.NewInMemoryRecipeRepository(),
			orders:    repository.NewInMemoryOrderRepository(),
			goods:     repository.NewInMemoryFinishedGoodsRepository(),
		}, func() {}, nil
	}

	db, err := database.NewSingleWriterDB(cfg.SQLitePath, log)
	if err != nil {
		return repositories{}, nil, err
	}
	closer := func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}
	return repositories{
		inventory: repository.NewSQLiteInventoryRepository(db),
		recipes:   repository.NewSQLiteRecipeRepository(db),
		orders:    repository.NewSQLiteOrderRepository(db),
		goods:     repository.NewSQLiteFinishedGoodsRepository(db),
	}, closer, nil
}

// healthCheck godoc
// @Summary      Health check endpoint
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "kitchen-service",
	})
}
