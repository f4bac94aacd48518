package entity

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name string `json:"name"`

	// ตัวนับเลข tab รายวัน (อัปเดตใน transaction ตอนเปิด tab)
	DailyTabCounter int       `json:"-"`
	LastTabReset    time.Time `json:"-"`

	Waiters []Waiter `json:"-"`
}
