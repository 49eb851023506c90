package configs

import (
	"log"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the configured database. An unreachable or misconfigured
// store aborts startup rather than failing on the first query.
func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.AdminUser{}, &entity.User{},
		&entity.RegistrationRequest{}, &entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
