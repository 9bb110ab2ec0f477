package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/config"
	"github.com/pandugalih/kedai-pos/database"
	"github.com/pandugalih/kedai-pos/middlewares"
	"github.com/pandugalih/kedai-pos/router"
	"github.com/pandugalih/kedai-pos/utils"
)

// Umur keranjang di redis; sesi yang lama ditinggal dianggap hangus.
const cartTTL = 24 * time.Hour

func main() {
	utils.InitLogger()

	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	// Initialize DB
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedMenu(db); err != nil {
		utils.ErrorLogger.Printf("Failed to seed menu: %v", err)
	}

	// Store keranjang: redis kalau dikonfigurasi, kalau tidak in-memory
	var store cart.Store
	if client := config.InitRedis(); client != nil {
		store = cart.NewRedisStore(client, cartTTL)
		utils.InfoLogger.Println("Cart store: redis")
	} else {
		store = cart.NewMemoryStore()
		utils.InfoLogger.Println("Cart store: in-memory (REDIS_ADDR not set)")
	}

	// Setup rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	// Setup router
	r := router.SetupRouter(db, store)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
