package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order = การสั่ง 1 รอบใน tab (มีได้หลายรอบต่อ tab)
type Order struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TabID     string    `gorm:"index;size:36" json:"tabId"`
	CreatedAt time.Time `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
