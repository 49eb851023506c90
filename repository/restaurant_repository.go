package repository

import (
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("created_at DESC").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) SlugTaken(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) UpdateProfile(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

// Block marks the tenant blocked and records the reason.
func (r *RestaurantRepository) Block(id uint, reason string) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(map[string]any{
		"status":       entity.RestaurantBlocked,
		"block_reason": reason,
	}).Error
}

// Unblock reactivates the tenant and clears the stored reason.
func (r *RestaurantRepository) Unblock(id uint) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(map[string]any{
		"status":       entity.RestaurantActive,
		"block_reason": nil,
	}).Error
}

func (r *RestaurantRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("status IN ?", []string{entity.RestaurantActive, entity.RestaurantTrial}).
		Count(&count).Error
	return count, err
}
