package repository

import (
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order together with its frozen items in one
// transaction: either the whole order is recorded or nothing is.
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (r *OrderRepository) ListForRestaurant(restID uint, status string) ([]entity.Order, error) {
	q := r.DB.Preload("Items").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderID, restID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByToken resolves the customer tracking page lookup.
func (r *OrderRepository) FindByToken(restID uint, token string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("restaurant_id = ? AND public_token = ?", restID, token).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// statusStamp maps a target status to the timestamp column it stamps.
var statusStamp = map[string]string{
	entity.OrderAccepted:  "accepted_at",
	entity.OrderCompleted: "completed_at",
	entity.OrderCancelled: "cancelled_at",
	entity.OrderRejected:  "rejected_at",
}

// TransitionStatus performs the guarded move from -> to. The WHERE clause
// pins the expected current status, so a concurrent staff action or an
// invalid jump both come back as zero rows affected.
func (r *OrderRepository) TransitionStatus(orderID uint, from, to string, reason *string) (bool, error) {
	updates := map[string]any{"status": to}
	if col, ok := statusStamp[to]; ok {
		updates[col] = time.Now()
	}
	if reason != nil {
		updates["cancel_reason"] = *reason
	}

	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RestaurantStats backs the operator dashboard header.
type RestaurantStats struct {
	PendingOrders  int64   `json:"pendingOrders"`
	CompletedToday int64   `json:"completedToday"`
	RevenueToday   float64 `json:"revenueToday"`
	TotalOrders    int64   `json:"totalOrders"`
}

func (r *OrderRepository) StatsForRestaurant(restID uint) (*RestaurantStats, error) {
	var s RestaurantStats
	today := startOfDay(time.Now())

	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ?", restID, entity.OrderPending).
		Count(&s.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ? AND created_at >= ?", restID, entity.OrderCompleted, today).
		Count(&s.CompletedToday).Error; err != nil {
		return nil, err
	}
	var revenue struct{ Sum float64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("restaurant_id = ? AND status = ? AND created_at >= ?", restID, entity.OrderCompleted, today).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	s.RevenueToday = revenue.Sum
	if err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ?", restID).
		Count(&s.TotalOrders).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListForReport returns completed orders within [from, to) for the xlsx
// export.
func (r *OrderRepository) ListForReport(restID uint, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restID, from, to).
		Order("created_at").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) RevenueSince(t time.Time) (float64, error) {
	var revenue struct{ Sum float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("created_at >= ?", t).
		Scan(&revenue).Error
	return revenue.Sum, err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
