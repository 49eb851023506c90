package repository

import (
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	DB *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

func (r *RegistrationRepository) Create(req *entity.RegistrationRequest) error {
	return r.DB.Create(req).Error
}

func (r *RegistrationRepository) FindByStatus(status string) ([]entity.RegistrationRequest, error) {
	var reqs []entity.RegistrationRequest
	err := r.DB.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *RegistrationRepository) FindByID(id uint) (*entity.RegistrationRequest, error) {
	var req entity.RegistrationRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPendingByEmail reports whether an unresolved request exists for the
// email, so login can distinguish "registration still pending" from wrong
// credentials.
func (r *RegistrationRepository) HasPendingByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.RegistrationRequest{}).
		Where("email = ? AND status = ?", email, entity.RequestPending).
		Count(&count).Error
	return count > 0, err
}

// CreateRestaurantAndApprove converts an approved request into a tenant in
// one transaction: restaurant row, owner user row, request marked verified.
// Either all three land or none do.
func (r *RegistrationRepository) CreateRestaurantAndApprove(
	req *entity.RegistrationRequest,
	rest *entity.Restaurant,
	owner *entity.User,
	now time.Time,
) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rest).Error; err != nil {
			return err
		}

		owner.RestaurantID = rest.ID
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		req.Status = entity.RequestVerified
		req.ReviewedAt = &now
		req.RestaurantID = &rest.ID
		return tx.Save(req).Error
	})
}

func (r *RegistrationRepository) Reject(req *entity.RegistrationRequest, reason string, internalNotes *string, now time.Time) error {
	req.Status = entity.RequestRejected
	req.ReviewedAt = &now
	req.RejectionReason = &reason
	if internalNotes != nil {
		req.InternalNotes = internalNotes
	}
	return r.DB.Save(req).Error
}

func (r *RegistrationRepository) CountPending() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.RegistrationRequest{}).
		Where("status = ?", entity.RequestPending).
		Count(&count).Error
	return count, err
}
