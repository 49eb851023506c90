package repository

import (
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// SetPassword stores a new hash and clears the temporary-password flag.
func (r *UserRepository) SetPassword(id uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"password":      hash,
		"temp_password": false,
	}).Error
}

func (r *UserRepository) FindAdminByEmail(email string) (*entity.AdminUser, error) {
	var a entity.AdminUser
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
