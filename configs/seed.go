package configs

import (
	"log"
	"strings"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Println("seed: skip admin, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed: admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu adds a starter category so a fresh install is not empty.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	cat := entity.MenuCategory{Name: "Pizzas", Description: "Stone baked", DisplayOrder: 1, IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		return err
	}
	log.Println("seed: starter menu category created")
	return nil
}
