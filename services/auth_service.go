package services

import (
	"strings"
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	regRepo   *repository.RegistrationRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
	regRepo *repository.RegistrationRepository,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		restRepo:  restRepo,
		regRepo:   regRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type LoginResult struct {
	Token        string             `json:"token"`
	User         *entity.User       `json:"user,omitempty"`
	Admin        *entity.AdminUser  `json:"admin,omitempty"`
	Restaurant   *entity.Restaurant `json:"restaurant,omitempty"`
	TempPassword bool               `json:"tempPassword"`
}

// Login authenticates a restaurant-side user. A wrong password, an email
// that only exists as an unresolved registration request, and a blocked
// tenant each come back as a distinct error so the UI can show the right
// banner.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		pending, perr := s.regRepo.HasPendingByEmail(email)
		if perr == nil && pending {
			return nil, ErrRegistrationPending
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	rest, err := s.restRepo.FindByID(user.RestaurantID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if rest.Status == entity.RestaurantBlocked {
		return nil, ErrRestaurantBlocked
	}

	token, err := utils.GenerateToken(user.ID, user.RestaurantID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:        token,
		User:         user,
		Restaurant:   rest,
		TempPassword: user.TempPassword,
	}, nil
}

// AdminLogin authenticates a platform admin against the separate
// admin_users table.
func (s *AuthService) AdminLogin(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.userRepo.FindAdminByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, 0, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Admin: admin}, nil
}

// ChangePassword verifies the current password, stores the new hash and
// clears the temporary-password flag.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	if len(next) < 8 {
		return invalid("newPassword", "must be at least 8 characters")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.SetPassword(userID, string(hash))
}
