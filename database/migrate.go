package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/models"
	"github.com/pandugalih/kedai-pos/utils"
)

// Migrate menjalankan AutoMigrate untuk semua model core. uniqueIndex pada
// transaksi.order_id ikut terbentuk di sini; invariant "satu transaksi per
// order" bergantung pada index itu.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuCategory{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaksi{},
	)
}

// SeedMenu mengisi kategori dan menu contoh kalau tabel masih kosong,
// supaya instance development langsung bisa dipakai browsing.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	categories := []models.MenuCategory{
		{Name: "Kopi", CreatedAt: now, UpdatedAt: now},
		{Name: "Non-Kopi", CreatedAt: now, UpdatedAt: now},
		{Name: "Makanan", CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	menus := []models.Menu{
		{CategoryID: categories[0].ID, Name: "Kopi Susu Gula Aren", Price: 18000, Status: models.MenuStatusAvailable, CreatedAt: now, UpdatedAt: now},
		{CategoryID: categories[0].ID, Name: "Americano", Price: 15000, Status: models.MenuStatusAvailable, CreatedAt: now, UpdatedAt: now},
		{CategoryID: categories[1].ID, Name: "Matcha Latte", Price: 22000, Status: models.MenuStatusAvailable, CreatedAt: now, UpdatedAt: now},
		{CategoryID: categories[2].ID, Name: "Roti Bakar Coklat", Price: 12000, Status: models.MenuStatusAvailable, CreatedAt: now, UpdatedAt: now},
		{CategoryID: categories[2].ID, Name: "Nasi Goreng Kedai", Price: 25000, Status: models.MenuStatusAvailable, CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d categories and %d menus", len(categories), len(menus))
	return nil
}
