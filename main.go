package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/quickbite/quickbite-app/cart"
	"github.com/quickbite/quickbite-app/config"
	"github.com/quickbite/quickbite-app/middlewares"
	"github.com/quickbite/quickbite-app/models"
	"github.com/quickbite/quickbite-app/router"
	"github.com/quickbite/quickbite-app/services"
	"github.com/quickbite/quickbite-app/statemachine"
	"github.com/quickbite/quickbite-app/storage"
	"github.com/quickbite/quickbite-app/store"
	"github.com/quickbite/quickbite-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	var backend storage.Backend
	if cfg.StorageDriver == "file" {
		backend, err = storage.NewFileStore(cfg.DataDir)
	} else {
		backend, err = storage.NewGormStore(db)
	}
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open storage backend: %v", err)
	}

	orderStore, err := store.NewOrderStore(backend, statemachine.ParsePolicy(cfg.TransitionPolicy))
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load order store: %v", err)
	}
	utils.InfoLogger.Printf("Order store loaded with %d order(s)", orderStore.Len())

	deps := router.Deps{
		DB:           db,
		Storage:      backend,
		Cart:         cart.New(),
		OrderStore:   orderStore,
		OrderService: services.NewOrderService(orderStore),
	}

	r := router.SetupRouter(deps)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
