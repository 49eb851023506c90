package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every session token. RestaurantID is zero for platform
// admins.
type Claims struct {
	UserID       uint   `json:"userId"`
	RestaurantID uint   `json:"restaurantId,omitempty"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 JWT with an explicit TTL. Sessions expire
// instead of being trusted indefinitely.
func GenerateToken(userID, restaurantID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:       userID,
		RestaurantID: restaurantID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
