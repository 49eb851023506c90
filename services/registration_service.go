package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
	"golang.org/x/crypto/bcrypt"
)

const trialDays = 14

type RegistrationService struct {
	Repo     *repository.RegistrationRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Notifier *livequery.Notifier

	publicBaseURL string
}

func NewRegistrationService(
	repo *repository.RegistrationRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	notifier *livequery.Notifier,
	publicBaseURL string,
) *RegistrationService {
	return &RegistrationService{
		Repo:          repo,
		RestRepo:      restRepo,
		UserRepo:      userRepo,
		Notifier:      notifier,
		publicBaseURL: publicBaseURL,
	}
}

type ApplyIn struct {
	RestaurantName string `json:"restaurantName" binding:"required"`
	OwnerName      string `json:"ownerName" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Address        string `json:"address"`
	RestaurantType string `json:"restaurantType"`
	HeardFrom      string `json:"heardFrom"`
	Notes          string `json:"notes"`
}

// Apply records a prospective tenant. Validation happens before any write.
func (s *RegistrationService) Apply(in *ApplyIn) (*entity.RegistrationRequest, error) {
	if !utils.IsValidPhone(in.Phone) {
		return nil, invalid("phone", "must be a valid 10-digit mobile number")
	}
	if in.Email != "" && !utils.IsValidEmail(in.Email) {
		return nil, invalid("email", "must be a valid email address")
	}

	req := &entity.RegistrationRequest{
		RestaurantName: strings.TrimSpace(in.RestaurantName),
		OwnerName:      strings.TrimSpace(in.OwnerName),
		Phone:          in.Phone,
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		City:           in.City,
		Address:        in.Address,
		RestaurantType: in.RestaurantType,
		HeardFrom:      in.HeardFrom,
		Notes:          in.Notes,
		Status:         entity.RequestPending,
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}
	s.Notifier.Notify(livequery.RequestsTopic())
	return req, nil
}

func (s *RegistrationService) List(status string) ([]entity.RegistrationRequest, error) {
	if status == "" {
		status = entity.RequestPending
	}
	return s.Repo.FindByStatus(status)
}

type ApproveIn struct {
	Email            string `json:"email" binding:"required"`
	SubscriptionPlan string `json:"subscriptionPlan"`
	InternalNotes    string `json:"internalNotes"`
}

// Credentials are shown once to the admin for manual dispatch; this system
// does not deliver them.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	LoginURL string `json:"loginUrl"`
}

type ApproveResult struct {
	Restaurant  *entity.Restaurant `json:"restaurant"`
	Credentials Credentials        `json:"credentials"`
}

// Approve converts a pending request into a live tenant: restaurant row,
// owner account with a generated temporary password, request marked
// verified, all in one transaction.
func (s *RegistrationService) Approve(requestID uint, in *ApproveIn) (*ApproveResult, error) {
	req, err := s.Repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.RequestPending {
		return nil, ErrNotPending
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, invalid("email", "must be a valid email address")
	}
	loginEmail := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.UserRepo.CountByEmail(loginEmail)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, invalid("email", "already used by another account")
	}

	slug, err := s.uniqueSlug(req.RestaurantName)
	if err != nil {
		return nil, err
	}

	plan := in.SubscriptionPlan
	if plan == "" {
		plan = "free_trial"
	}

	now := time.Now()
	trialEnds := now.AddDate(0, 0, trialDays)
	rest := &entity.Restaurant{
		Name:                  req.RestaurantName,
		Slug:                  slug,
		OwnerName:             req.OwnerName,
		Phone:                 req.Phone,
		Email:                 loginEmail,
		City:                  req.City,
		Address:               req.Address,
		RestaurantType:        req.RestaurantType,
		SubscriptionPlan:      plan,
		Status:                entity.RestaurantTrial,
		TrialEndsAt:           &trialEnds,
		InternalNotes:         in.InternalNotes,
		RegistrationRequestID: &req.ID,
	}

	tempPassword := utils.GenerateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	owner := &entity.User{
		Email:        rest.Email,
		Password:     string(hash),
		Name:         req.OwnerName,
		Role:         "owner",
		TempPassword: true,
	}

	if err := s.Repo.CreateRestaurantAndApprove(req, rest, owner, now); err != nil {
		return nil, err
	}

	s.Notifier.Notify(livequery.RequestsTopic())
	s.Notifier.Notify(livequery.RestaurantsTopic())

	return &ApproveResult{
		Restaurant: rest,
		Credentials: Credentials{
			Email:    owner.Email,
			Password: tempPassword,
			LoginURL: fmt.Sprintf("%s/login", s.publicBaseURL),
		},
	}, nil
}

// Reject resolves a pending request with a mandatory reason. Resolved
// requests cannot be rejected again.
func (s *RegistrationService) Reject(requestID uint, reason string, internalNotes string) error {
	if strings.TrimSpace(reason) == "" {
		return invalid("reason", "is required")
	}

	req, err := s.Repo.FindByID(requestID)
	if err != nil {
		return err
	}
	if req.Status != entity.RequestPending {
		return ErrNotPending
	}

	var notes *string
	if internalNotes != "" {
		notes = &internalNotes
	}
	if err := s.Repo.Reject(req, reason, notes, time.Now()); err != nil {
		return err
	}
	s.Notifier.Notify(livequery.RequestsTopic())
	return nil
}

// uniqueSlug appends a counter when the name collides with an existing
// tenant.
func (s *RegistrationService) uniqueSlug(name string) (string, error) {
	base := utils.GenerateSlug(name)
	if base == "" {
		base = "restaurant"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.RestRepo.SlugTaken(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
