package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/roshanx0/restaurant-ordering-saas/cart"
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

type OrderService struct {
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	Notifier *livequery.Notifier

	taxRate float64
}

func NewOrderService(
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
	notifier *livequery.Notifier,
	taxRate float64,
) *OrderService {
	return &OrderService{
		Repo:     repo,
		MenuRepo: menuRepo,
		RestRepo: restRepo,
		Notifier: notifier,
		taxRate:  taxRate,
	}
}

type SubmittedLine struct {
	MenuItemID uint     `json:"menuItemId" binding:"required"`
	Quantity   int      `json:"quantity" binding:"min=1"`
	Size       string   `json:"size"`
	Addons     []string `json:"addons"`
}

type SubmitOrderIn struct {
	OrderType     string          `json:"orderType" binding:"required,oneof=table takeaway"`
	TableNumber   string          `json:"tableNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	CustomerNote  string          `json:"customerNote"`
	Items         []SubmittedLine `json:"items" binding:"required"`
}

type SubmitOrderOut struct {
	OrderID     uint    `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	TrackToken  string  `json:"trackToken"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Submit places a customer order against the restaurant resolved by slug.
// Every submitted line is re-resolved against the live menu and re-priced
// server-side; client-sent prices are never trusted. The order and its items
// are written atomically, so a failure leaves nothing recorded and the
// customer's cart intact for retry.
func (s *OrderService) Submit(slug string, in *SubmitOrderIn) (*SubmitOrderOut, error) {
	rest, err := s.RestRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !rest.Orderable() {
		return nil, ErrRestaurantBlocked
	}

	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, invalid("items", "cart is empty")
	}

	c := cart.New()
	for _, line := range in.Items {
		item, err := s.MenuRepo.FindForRestaurant(rest.ID, line.MenuItemID)
		if err != nil {
			return nil, invalid("items", "menu item not found")
		}
		if !item.IsAvailable {
			return nil, invalid("items", item.Name+" is no longer available")
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		added, err := c.Add(item, line.Size, line.Addons)
		if err != nil {
			return nil, invalid("items", err.Error())
		}
		if qty > 1 {
			c.UpdateQuantity(added, qty-1)
		}
	}

	totals := c.ComputeTotals(s.taxRate)
	order := &entity.Order{
		RestaurantID:  rest.ID,
		OrderNumber:   utils.GenerateOrderNumber(),
		PublicToken:   uuid.NewString(),
		OrderType:     in.OrderType,
		TableNumber:   in.TableNumber,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: in.CustomerPhone,
		CustomerNote:  in.CustomerNote,
		Items:         c.Freeze(),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        entity.OrderPending,
	}

	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}
	s.Notifier.Notify(livequery.OrdersTopic(rest.ID))

	return &SubmitOrderOut{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TrackToken:  order.PublicToken,
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Total:       order.Total,
	}, nil
}

func validateCustomer(in *SubmitOrderIn) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return invalid("customerName", "is required")
	}
	if !utils.IsValidPhone(in.CustomerPhone) {
		return invalid("customerPhone", "must be a valid 10-digit mobile number")
	}
	if in.OrderType == entity.OrderTypeTable && strings.TrimSpace(in.TableNumber) == "" {
		return invalid("tableNumber", "is required for dine-in orders")
	}
	return nil
}

func (s *OrderService) ListForRestaurant(restID uint, status string) ([]entity.Order, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, invalid("status", "unknown status")
	}
	return s.Repo.ListForRestaurant(restID, status)
}

func (s *OrderService) Detail(restID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForRestaurant(restID, orderID)
}

// Track is the customer-facing status lookup by opaque token.
func (s *OrderService) Track(slug, token string) (*entity.Order, error) {
	rest, err := s.RestRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByToken(rest.ID, token)
}

func (s *OrderService) Stats(restID uint) (*repository.RestaurantStats, error) {
	return s.Repo.StatsForRestaurant(restID)
}
