package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type TabRepository struct {
	DB *gorm.DB
}

func NewTabRepository(db *gorm.DB) *TabRepository {
	return &TabRepository{DB: db}
}

// ---------------- Snapshot queries ----------------

// tab ที่ยังเปิดอยู่ของโต๊ะเดียว เรียงตามเวลาเปิด (ลำดับนี้คือลำดับ snapshot)
// preload ครบทั้ง orders + items เพราะ consumer ต้องเห็นทั้งก้อน
func (r *TabRepository) ListOpenByTable(tableID string) ([]entity.Tab, error) {
	tabs := make([]entity.Tab, 0)
	err := r.DB.
		Where("table_id = ? AND status = ?", tableID, entity.TabOpen).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.created_at ASC, orders.id ASC")
		}).
		Preload("Orders.Items").
		Order("created_at ASC, id ASC").
		Find(&tabs).Error
	return tabs, err
}

// ภาพรวมทั้งร้าน (waiter dashboard)
func (r *TabRepository) ListOpenByRestaurant(restID uint) ([]entity.Tab, error) {
	tabs := make([]entity.Tab, 0)
	err := r.DB.
		Where("restaurant_id = ? AND status = ?", restID, entity.TabOpen).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.created_at ASC, orders.id ASC")
		}).
		Preload("Orders.Items").
		Order("created_at ASC, id ASC").
		Find(&tabs).Error
	return tabs, err
}

func (r *TabRepository) Get(tabID string) (*entity.Tab, error) {
	var t entity.Tab
	if err := r.DB.First(&t, "id = ?", tabID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------------- Writes ----------------

func (r *TabRepository) Create(tx *gorm.DB, t *entity.Tab) error {
	return tx.Create(t).Error
}

func (r *TabRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ปิด tab แบบมี guard: อัปเดตเฉพาะตอนที่ยัง open อยู่เท่านั้น
// RowsAffected = 0 แปลว่าไม่มี tab นั้น หรือโดนปิดไปก่อนแล้ว
func (r *TabRepository) CloseOpen(tx *gorm.DB, tabID string, at time.Time) (bool, error) {
	res := tx.Model(&entity.Tab{}).
		Where("id = ? AND status = ?", tabID, entity.TabOpen).
		Updates(map[string]any{"status": entity.TabClosed, "closed_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
