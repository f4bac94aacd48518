package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem = เมนู 1 รายการในรอบสั่ง
// Price เก็บเป็นหน่วยย่อย (สตางค์/cent) เหมือนเงินทุกที่ในระบบ
type OrderItem struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OrderID string `gorm:"index;size:36" json:"orderId"`

	Name  string `json:"name"`
	Price int64  `json:"price"`
	// 0 = ไม่ได้ส่งมา ให้ตีความเป็น 1 ตอนคิดเงิน
	Quantity int `json:"quantity"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
