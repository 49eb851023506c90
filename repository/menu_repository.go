package repository

import (
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindAvailableByRestaurant is the customer-facing menu: only items currently
// marked available.
func (r *MenuRepository) FindAvailableByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ? AND is_available = ?", restID, true).
		Order("category, name").
		Find(&items).Error
	return items, err
}

// FindForRestaurant scopes the lookup to the tenant so one restaurant can
// never read or edit another's items.
func (r *MenuRepository) FindForRestaurant(restID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(restID, itemID uint) error {
	res := r.DB.Where("restaurant_id = ?", restID).Delete(&entity.MenuItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) SetAvailability(restID, itemID uint, available bool) error {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", itemID, restID).
		Update("is_available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
