package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService ตรวจ PIN ของ waiter แล้วออก token
// แค่ "PIN ถูก = ได้ token" — policy เรื่องสิทธิ์อื่น ๆ อยู่นอกระบบนี้
type AuthService struct {
	waiterRepo *repository.WaiterRepository
	jwtSecret  string
	jwtTTL     time.Duration
}

func NewAuthService(repo *repository.WaiterRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		waiterRepo: repo,
		jwtSecret:  secret,
		jwtTTL:     ttl,
	}
}

// WaiterLogin ตรวจชื่อ + PIN 4 หลัก แล้วออก JWT
// ไม่บอกว่าพลาดตรงไหน (ชื่อผิดหรือ PIN ผิด) กัน enumeration
func (s *AuthService) WaiterLogin(restID uint, name, pin string) (string, *entity.Waiter, error) {
	waiter, err := s.waiterRepo.FindByName(restID, name)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(waiter.PINHash), []byte(pin)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(waiter.ID, waiter.RestaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, waiter, nil
}
