package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway sqlite file.
type testEnv struct {
	DB       *gorm.DB
	Notifier *livequery.Notifier

	UserRepo  *repository.UserRepository
	RegRepo   *repository.RegistrationRepository
	RestRepo  *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository

	Auth  *AuthService
	Reg   *RegistrationService
	Rest  *RestaurantService
	Menu  *MenuService
	Order *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.AdminUser{}, &entity.User{},
		&entity.RegistrationRequest{}, &entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	e := &testEnv{DB: db, Notifier: livequery.NewNotifier()}
	e.UserRepo = repository.NewUserRepository(db)
	e.RegRepo = repository.NewRegistrationRepository(db)
	e.RestRepo = repository.NewRestaurantRepository(db)
	e.MenuRepo = repository.NewMenuRepository(db)
	e.OrderRepo = repository.NewOrderRepository(db)

	e.Auth = NewAuthService(e.UserRepo, e.RestRepo, e.RegRepo, "test-secret", time.Hour)
	e.Reg = NewRegistrationService(e.RegRepo, e.RestRepo, e.UserRepo, e.Notifier, "http://localhost:8000")
	e.Rest = NewRestaurantService(e.RestRepo, e.Notifier)
	e.Menu = NewMenuService(e.MenuRepo, e.Notifier)
	e.Order = NewOrderService(e.OrderRepo, e.MenuRepo, e.RestRepo, e.Notifier, 0.05)
	return e
}

func (e *testEnv) seedRestaurant(t *testing.T, slug, status string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:   "Spice Garden",
		Slug:   slug,
		Email:  slug + "@example.in",
		Status: status,
	}
	require.NoError(t, e.DB.Create(rest).Error)
	return rest
}

func (e *testEnv) seedMenuItem(t *testing.T, restID uint, item entity.MenuItem) *entity.MenuItem {
	t.Helper()
	item.RestaurantID = restID
	item.IsAvailable = true
	require.NoError(t, e.DB.Create(&item).Error)
	return &item
}

func (e *testEnv) seedUser(t *testing.T, restID uint, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{
		Email:        email,
		Password:     string(hash),
		Role:         "owner",
		RestaurantID: restID,
	}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}
