package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
	notificationapp "github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Storefront Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productStore := persistence.NewGormProductStore(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	adminDirectory := persistence.NewGormAdminDirectory(db.DB)

	// Initialize upstream catalog adapters
	adapters := buildCatalogAdapters(cfg, log)

	// Category cache: Redis when reachable, otherwise in-process
	var aggregatorOpts []appaggregation.AggregatorOption
	if cfg.Catalog.CategoryCacheTTL > 0 {
		redisCache, err := cache.NewRedisCategoryCache(cfg.Redis, cfg.Catalog.CategoryCacheTTL, log)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory category cache", zap.Error(err))
			aggregatorOpts = append(aggregatorOpts,
				appaggregation.WithCategoryCache(cache.NewInMemoryCategoryCache(cfg.Catalog.CategoryCacheTTL)))
		} else {
			defer func() {
				if err := redisCache.Close(); err != nil {
					log.Error("Error closing Redis client", zap.Error(err))
				}
			}()
			aggregatorOpts = append(aggregatorOpts, appaggregation.WithCategoryCache(redisCache))
		}
	}

	// Initialize application services
	notificationService := notificationapp.NewService(notificationRepo, adminDirectory, log)
	aggregatorService := appaggregation.NewAggregatorService(adapters, log, aggregatorOpts...)
	syncService := appaggregation.NewSyncService(aggregatorService, productStore, notificationService, log)
	combinedService := appaggregation.NewCombinedService(productStore, aggregatorService, cfg.Catalog.ExternalBudget, log)
	catalogService := appaggregation.NewCatalogService(productStore, log)

	// Initialize auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	externalProductHandler := handler.NewExternalProductHandler(
		aggregatorService, syncService, combinedService, catalogService)
	productHandler := handler.NewProductHandler(catalogService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Per-IP request throttling
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Per-IP rate limit
	engine.Use(middleware.RateLimit(middleware.NewRateLimiter(300, time.Minute)))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT guard for admin-only routes; reads stay public
	jwtAuth := middleware.JWTAuthMiddleware(jwtService)
	requireAdmin := middleware.RequireAdmin()
	adminOnly := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{jwtAuth, requireAdmin, h}
	}

	// External catalog endpoints. Reads are public; sync and clear are
	// admin-only.
	externalRoutes := router.NewDomainGroup("external-products", "/external-products")
	externalRoutes.GET("", externalProductHandler.Fetch)
	externalRoutes.GET("/categories", externalProductHandler.FetchCategories)
	externalRoutes.GET("/search", externalProductHandler.Search)
	externalRoutes.GET("/combined", externalProductHandler.Combined)
	externalRoutes.POST("/sync", adminOnly(externalProductHandler.Sync)...)
	externalRoutes.DELETE("/clear/:source", adminOnly(externalProductHandler.Clear)...)
	r.Register(externalRoutes)

	// Local product catalog. Reads are public; writes are admin-only.
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/:id", productHandler.Get)
	productRoutes.POST("", adminOnly(productHandler.Create)...)
	productRoutes.PUT("/:id", adminOnly(productHandler.Update)...)
	productRoutes.DELETE("/:id", adminOnly(productHandler.Delete)...)
	r.Register(productRoutes)

	// Admin notifications
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.Use(jwtAuth, requireAdmin)
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.PUT("/:id/read", notificationHandler.MarkRead)
	r.Register(notificationRoutes)

	// System endpoints
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildCatalogAdapters constructs one adapter per configured upstream.
// A misconfigured adapter is logged and skipped so the rest keep serving.
func buildCatalogAdapters(cfg *config.Config, log *zap.Logger) []aggregation.CatalogSource {
	adapters := make([]aggregation.CatalogSource, 0, 3)

	fakeStore, err := catalog.NewFakeStoreAdapter(&catalog.Config{
		BaseURL:        cfg.Catalog.FakeStoreBaseURL,
		TimeoutSeconds: cfg.Catalog.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Error("FakeStore adapter unavailable", zap.Error(err))
	} else {
		adapters = append(adapters, fakeStore)
	}

	dummyJSON, err := catalog.NewDummyJSONAdapter(&catalog.Config{
		BaseURL:        cfg.Catalog.DummyJSONBaseURL,
		TimeoutSeconds: cfg.Catalog.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Error("DummyJSON adapter unavailable", zap.Error(err))
	} else {
		adapters = append(adapters, dummyJSON)
	}

	platzi, err := catalog.NewPlatziAdapter(&catalog.Config{
		BaseURL:        cfg.Catalog.PlatziBaseURL,
		TimeoutSeconds: cfg.Catalog.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Error("Platzi adapter unavailable", zap.Error(err))
	} else {
		adapters = append(adapters, platzi)
	}

	return adapters
}
