package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type WaiterRepository struct {
	DB *gorm.DB
}

func NewWaiterRepository(db *gorm.DB) *WaiterRepository {
	return &WaiterRepository{DB: db}
}

// หา waiter ตามร้าน + ชื่อ (ชื่อ match แบบ case-insensitive)
func (r *WaiterRepository) FindByName(restID uint, name string) (*entity.Waiter, error) {
	var w entity.Waiter
	err := r.DB.
		Where("restaurant_id = ? AND LOWER(name) = ?", restID, strings.ToLower(strings.TrimSpace(name))).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WaiterRepository) Create(w *entity.Waiter) error {
	return r.DB.Create(w).Error
}

func (r *WaiterRepository) ListByRestaurant(restID uint) ([]entity.Waiter, error) {
	var out []entity.Waiter
	err := r.DB.Where("restaurant_id = ?", restID).Order("name ASC").Find(&out).Error
	return out, err
}
