package services

import (
	"strings"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	Notifier *livequery.Notifier
}

func NewRestaurantService(repo *repository.RestaurantRepository, notifier *livequery.Notifier) *RestaurantService {
	return &RestaurantService{Repo: repo, Notifier: notifier}
}

func (s *RestaurantService) ListAll() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

// Block is admin-only and reversible; the reason stays on the row while
// blocked.
func (s *RestaurantService) Block(id uint, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return invalid("reason", "is required")
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.Block(id, reason); err != nil {
		return err
	}
	s.Notifier.Notify(livequery.RestaurantsTopic())
	return nil
}

func (s *RestaurantService) Unblock(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.Unblock(id); err != nil {
		return err
	}
	s.Notifier.Notify(livequery.RestaurantsTopic())
	return nil
}

type UpdateProfileIn struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	City    *string `json:"city"`
	Address *string `json:"address"`
	LogoURL *string `json:"logoUrl"`
}

// UpdateProfile lets an operator edit their own tenant record. The slug and
// status are not operator-editable.
func (s *RestaurantService) UpdateProfile(id uint, in *UpdateProfileIn) (*entity.Restaurant, error) {
	updates := map[string]any{}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.LogoURL != nil {
		updates["logo_url"] = *in.LogoURL
	}

	if len(updates) > 0 {
		if err := s.Repo.UpdateProfile(id, updates); err != nil {
			return nil, err
		}
		s.Notifier.Notify(livequery.RestaurantsTopic())
	}
	return s.Repo.FindByID(id)
}
