package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tab = บิลเปิดของลูกค้า 1 คนต่อ 1 โต๊ะ
// ปิดแล้วปิดเลย (open → closed ครั้งเดียว ไม่ reopen)
type Tab struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	TableID      string `gorm:"index:idx_tabs_table_status;size:64" json:"tableId"`
	RestaurantID uint   `gorm:"index" json:"restaurantId"`
	CustomerName string `json:"customerName"`

	Status string `gorm:"index:idx_tabs_table_status;size:16" json:"status"`

	// เลขอ้างอิงสั้น ๆ รายวัน (รีเซ็ตทุกวันต่อร้าน)
	ReferenceNumber string `json:"referenceNumber"`

	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Orders []Order `gorm:"foreignKey:TabID" json:"orders"`
}

func (t *Tab) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
