package configs

import (
	"log"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first platform admin from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.AdminUser{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Platform Admin",
	}
	return db.Create(&admin).Error
}
