package services

import (
	"strings"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	Notifier *livequery.Notifier
}

func NewMenuService(repo *repository.MenuRepository, notifier *livequery.Notifier) *MenuService {
	return &MenuService{Repo: repo, Notifier: notifier}
}

func (s *MenuService) ListByRestaurant(restID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindByRestaurant(restID)
}

func (s *MenuService) ListAvailable(restID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindAvailableByRestaurant(restID)
}

func (s *MenuService) Get(restID, itemID uint) (*entity.MenuItem, error) {
	return s.Repo.FindForRestaurant(restID, itemID)
}

type MenuItemIn struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	BasePrice   float64              `json:"basePrice"`
	Category    string               `json:"category"`
	ImageURL    string               `json:"imageUrl"`
	IsAvailable *bool                `json:"isAvailable"`
	Sizes       []entity.SizeOption  `json:"sizes"`
	Addons      []entity.AddonOption `json:"addons"`
}

func (s *MenuService) validate(in *MenuItemIn) error {
	if in.BasePrice < 0 {
		return invalid("basePrice", "must not be negative")
	}
	for _, size := range in.Sizes {
		if strings.TrimSpace(size.Name) == "" {
			return invalid("sizes", "size name is required")
		}
		if size.Price < 0 {
			return invalid("sizes", "size price must not be negative")
		}
	}
	for _, addon := range in.Addons {
		if strings.TrimSpace(addon.Name) == "" {
			return invalid("addons", "addon name is required")
		}
		if addon.Price < 0 {
			return invalid("addons", "addon price must not be negative")
		}
	}
	return nil
}

func (s *MenuService) Create(restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &entity.MenuItem{
		RestaurantID: restID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		IsAvailable:  available,
		Sizes:        in.Sizes,
		Addons:       in.Addons,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	s.Notifier.Notify(livequery.MenuTopic(restID))
	return item, nil
}

func (s *MenuService) Update(restID, itemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	item, err := s.Repo.FindForRestaurant(restID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.BasePrice = in.BasePrice
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	item.Sizes = in.Sizes
	item.Addons = in.Addons

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	s.Notifier.Notify(livequery.MenuTopic(restID))
	return item, nil
}

func (s *MenuService) Delete(restID, itemID uint) error {
	if err := s.Repo.Delete(restID, itemID); err != nil {
		return err
	}
	s.Notifier.Notify(livequery.MenuTopic(restID))
	return nil
}

// SetAvailability flips the customer-visible toggle; the menu change stream
// carries it to open customer pages.
func (s *MenuService) SetAvailability(restID, itemID uint, available bool) error {
	if err := s.Repo.SetAvailability(restID, itemID, available); err != nil {
		return err
	}
	s.Notifier.Notify(livequery.MenuTopic(restID))
	return nil
}
