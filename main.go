package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fatimadayan/Sooqbot/ai"
	"github.com/Fatimadayan/Sooqbot/config"
	api "github.com/Fatimadayan/Sooqbot/handler"
	"github.com/Fatimadayan/Sooqbot/logger"
	"github.com/Fatimadayan/Sooqbot/middleware"
	orderpkg "github.com/Fatimadayan/Sooqbot/order"
	orderrepo "github.com/Fatimadayan/Sooqbot/order/repository"
	ordersvc "github.com/Fatimadayan/Sooqbot/order/service"
	productpkg "github.com/Fatimadayan/Sooqbot/product"
	productrepo "github.com/Fatimadayan/Sooqbot/product/repository"
	productsvc "github.com/Fatimadayan/Sooqbot/product/service"
	"github.com/Fatimadayan/Sooqbot/realtime"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
	storerepo "github.com/Fatimadayan/Sooqbot/store/repository"
	storesvc "github.com/Fatimadayan/Sooqbot/store/service"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// setup repositories: postgres in production, in-memory for development
	var (
		db          *gorm.DB
		storeRepo   storepkg.Repository
		productRepo productpkg.Repository
		orderRepo   orderpkg.Repository
	)
	if cfg.Storage == "memory" {
		logger.Log.Warn("running with in-memory storage; data is lost on restart")
		storeRepo = storerepo.NewMemoryStoreRepo()
		productRepo = productrepo.NewMemoryProductRepo()
		orderRepo = orderrepo.NewMemoryOrderRepo()
	} else {
		db = setupDatabase(cfg.DatabaseURL)
		storeRepo = storerepo.NewGormStoreRepo(db)
		productRepo = productrepo.NewGormProductRepo(db)
		orderRepo = orderrepo.NewGormOrderRepo(db)
	}

	if !cfg.AIConfigured() {
		logger.Log.Warn("OPENAI_API_KEY not set; product generation endpoints will fail upstream")
	}
	generator := ai.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AIImagesEnabled)

	// setup services
	storeService := storesvc.NewStoreService(storeRepo)
	productService := productsvc.NewProductService(productRepo, storeRepo, generator)
	orderService := ordersvc.NewOrderService(orderRepo, storeRepo)

	// setup realtime hub + handlers
	hub := realtime.NewHub()
	storeHandler := api.NewStoreHandler(storeService, cfg.JWTSecret)
	productHandler := api.NewProductHandler(productService)
	orderHandler := api.NewOrderHandler(orderService, hub)
	wsHandler := api.NewWSHandler(hub, cfg.JWTSecret)
	healthHandler := api.NewHealthHandler(db, storeRepo, cfg.AIConfigured())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", healthHandler.Health())

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/stores", storeHandler.CreateStore())
		v1.GET("/stores", storeHandler.ListStores())
		v1.GET("/stores/:id", storeHandler.GetStore())
		v1.PATCH("/stores/:id", storeHandler.UpdateStore())
		v1.POST("/stores/:id/generate-products", productHandler.GenerateProducts())
		v1.GET("/stores/:id/dashboard/ws", wsHandler.DashboardSocket())

		v1.POST("/products", productHandler.CreateProduct())
		v1.GET("/products", productHandler.ListProducts())
		v1.GET("/products/:id", productHandler.GetProduct())

		v1.POST("/orders", orderHandler.CreateOrder())
		v1.GET("/orders", orderHandler.ListOrders())
		v1.GET("/orders/:id", orderHandler.GetOrder())
		v1.PATCH("/orders/:id/status", middleware.RequireStoreToken(cfg.JWTSecret), orderHandler.UpdateStatus())
	}

	logger.Log.Info("starting server", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
