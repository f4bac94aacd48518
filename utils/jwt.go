package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims ของ waiter token
type Claims struct {
	WaiterID     uint `json:"waiterId"`
	RestaurantID uint `json:"restaurantId"`
	jwt.RegisteredClaims
}

// GenerateToken สร้าง JWT ให้ waiter หลังตรวจ PIN ผ่าน
func GenerateToken(waiterID, restaurantID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		WaiterID:     waiterID,
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
