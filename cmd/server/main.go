package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sumia12/StockpileDS/config"
	"github.com/sumia12/StockpileDS/internal/handler"
	"github.com/sumia12/StockpileDS/internal/middleware"
	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/pkg/database"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()
	defer database.Close()

	// 3. Migrate Schema
	log.Println("Running migrations...")
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdminUser()
	if config.AppConfig.Defaults.SeedDemoData {
		database.SeedDemoData()
	}

	// 4. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	authHandler := &handler.AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	adminHandler := &handler.AdminHandler{}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.AuthMiddleware(models.RoleAdmin))
	{
		adminRoutes.POST("/users", adminHandler.CreateUser)
		adminRoutes.GET("/users", adminHandler.ListUsers)
		adminRoutes.PUT("/users/:id/password", adminHandler.ResetUserPassword)
	}

	productHandler := &handler.ProductHandler{}
	customerHandler := &handler.CustomerHandler{}
	supplierHandler := &handler.SupplierHandler{}
	orderHandler := &handler.OrderHandler{}
	purchaseHandler := &handler.PurchaseHandler{}
	reportHandler := &handler.ReportHandler{}

	// Authenticated Reads (any role)
	readRoutes := r.Group("/api/v1")
	readRoutes.Use(middleware.AuthMiddleware())
	{
		readRoutes.GET("/products", productHandler.ListProducts)
		readRoutes.GET("/products/search", productHandler.SearchProducts)
		readRoutes.GET("/customers", customerHandler.ListCustomers)
		readRoutes.GET("/suppliers", supplierHandler.ListSuppliers)
		readRoutes.GET("/orders", orderHandler.ListOrders)
		readRoutes.GET("/purchases", purchaseHandler.ListPurchases)
	}

	// Protected Writes
	writeRoutes := r.Group("/api/v1")
	writeRoutes.Use(middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager))
	{
		writeRoutes.POST("/products", productHandler.CreateProduct)
		writeRoutes.PUT("/products/:id", productHandler.UpdateProduct)
		writeRoutes.POST("/customers", customerHandler.CreateCustomer)
		writeRoutes.POST("/suppliers", supplierHandler.CreateSupplier)
		writeRoutes.POST("/orders", orderHandler.CreateOrder)
		writeRoutes.POST("/purchases", purchaseHandler.CreatePurchase)
	}

	// Reports
	reportRoutes := r.Group("/api/v1/reports")
	reportRoutes.Use(middleware.AuthMiddleware(models.RoleAdmin, models.RoleManager))
	{
		reportRoutes.GET("/inventory", reportHandler.GetInventoryReport)
		reportRoutes.GET("/inventory.csv", reportHandler.ExportInventoryCSV)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
