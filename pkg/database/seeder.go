package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/sumia12/StockpileDS/config"
	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/internal/utils"
)

// SeedAdminUser provisions the initial admin account from config.
// End users never mutate the users table; accounts come from here or
// from the admin API.
func SeedAdminUser() {
	username := config.AppConfig.Defaults.AdminUsername
	password := config.AppConfig.Defaults.AdminPassword
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.User
	if err := DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(password)
			admin = models.User{
				Username:     username,
				PasswordHash: hashedPassword,
				Role:         models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		}
	}
}

// SeedDemoData populates demonstration rows. Guarded on the products
// table so reruns do not duplicate data.
func SeedDemoData() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Demo data already present, skipping seed")
		return
	}

	users := []struct {
		Username string
		Password string
		Role     string
	}{
		{"manager", "manager123", models.RoleManager},
		{"staff", "staff123", models.RoleStaff},
	}
	for _, u := range users {
		var existing models.User
		if err := DB.Where("username = ?", u.Username).First(&existing).Error; err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(u.Password)
			DB.Create(&models.User{Username: u.Username, PasswordHash: hashedPassword, Role: u.Role})
		}
	}

	products := []models.Product{
		{Name: "Laptop", Category: "Electronics", Stock: 50, Price: 1200.00},
		{Name: "T-Shirt", Category: "Clothing", Stock: 200, Price: 20.00},
		{Name: "Sofa", Category: "Furniture", Stock: 10, Price: 550.00},
		{Name: "Smartphone", Category: "Electronics", Stock: 100, Price: 700.00},
		{Name: "Desk", Category: "Furniture", Stock: 15, Price: 300.00},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Printf("Failed to seed products: %v", err)
		return
	}

	customers := []models.Customer{
		{Name: "John Doe", Country: "USA", City: "New York", Contact: "123-456-7890"},
		{Name: "Jane Smith", Country: "UK", City: "London", Contact: "987-654-3210"},
		{Name: "Carlos Ruiz", Country: "Mexico", City: "Mexico City", Contact: "555-234-5678"},
	}
	if err := DB.Create(&customers).Error; err != nil {
		log.Printf("Failed to seed customers: %v", err)
		return
	}

	suppliers := []models.Supplier{
		{Name: "Tech Corp", Contact: "123-111-2222"},
		{Name: "Fashion World", Contact: "456-333-4444"},
		{Name: "Home Essentials", Contact: "789-555-6666"},
	}
	if err := DB.Create(&suppliers).Error; err != nil {
		log.Printf("Failed to seed suppliers: %v", err)
		return
	}

	today := time.Now()
	orders := []models.Order{
		{ProductID: products[0].ID, CustomerID: customers[0].ID, Quantity: 2, OrderDate: today},
		{ProductID: products[1].ID, CustomerID: customers[1].ID, Quantity: 1, OrderDate: today},
		{ProductID: products[2].ID, CustomerID: customers[2].ID, Quantity: 5, OrderDate: today},
	}
	if err := DB.Create(&orders).Error; err != nil {
		log.Printf("Failed to seed orders: %v", err)
	}

	purchases := []models.Purchase{
		{ProductID: products[0].ID, SupplierID: suppliers[0].ID, Quantity: 10, PurchaseDate: today, UnitPrice: 1100.00},
		{ProductID: products[1].ID, SupplierID: suppliers[1].ID, Quantity: 50, PurchaseDate: today, UnitPrice: 18.00},
		{ProductID: products[2].ID, SupplierID: suppliers[2].ID, Quantity: 5, PurchaseDate: today, UnitPrice: 500.00},
	}
	if err := DB.Create(&purchases).Error; err != nil {
		log.Printf("Failed to seed purchases: %v", err)
	}

	log.Println("Demo data seeded successfully.")
}
