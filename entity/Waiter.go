package entity

import (
	"gorm.io/gorm"
)

type Waiter struct {
	gorm.Model
	Name string `json:"name"`

	// PIN 4 หลัก เก็บเป็น bcrypt hash เท่านั้น
	PINHash string `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
