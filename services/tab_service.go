package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/billing"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrTabNotFound = errors.New("tab not found")
	ErrTabClosed   = errors.New("tab already closed")
)

// TabService จัดการ lifecycle ของ tab: เปิด เพิ่มออเดอร์ ปิด
// ทุก mutation เขียนลง store อย่างเดียว ไม่แตะ projection ฝั่งไหนทั้งนั้น —
// UI จะเห็นผลผ่าน snapshot รอบถัดไปจาก TabFeed เสมอ (source of truth มีที่เดียว)
type TabService struct {
	db   *gorm.DB
	repo *repository.TabRepository
	feed *TabFeed
}

func NewTabService(db *gorm.DB, repo *repository.TabRepository, feed *TabFeed) *TabService {
	return &TabService{db: db, repo: repo, feed: feed}
}

// CreateTab เปิด tab ใหม่ พร้อมออกเลขอ้างอิงรายวันของร้าน
// ตัวนับอยู่บน row ร้าน อัปเดตใน transaction เดียวกับการสร้าง tab
func (s *TabService) CreateTab(restID uint, tableID, customerName string) (*entity.Tab, error) {
	tableID = strings.TrimSpace(tableID)
	customerName = strings.TrimSpace(customerName)
	if tableID == "" {
		return nil, errors.New("tableId is required")
	}
	if customerName == "" {
		return nil, errors.New("customerName is required")
	}

	var tab *entity.Tab
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var rest entity.Restaurant
		if err := tx.First(&rest, restID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("restaurant not found")
			}
			return err
		}

		now := time.Now()
		counter := rest.DailyTabCounter
		if rest.LastTabReset.IsZero() || !sameDay(rest.LastTabReset, now) {
			counter = 1 // วันใหม่ เริ่มนับใหม่
		} else {
			counter++
		}

		tab = &entity.Tab{
			TableID:         tableID,
			RestaurantID:    rest.ID,
			CustomerName:    customerName,
			Status:          entity.TabOpen,
			ReferenceNumber: strconv.Itoa(counter),
		}
		if err := s.repo.Create(tx, tab); err != nil {
			return err
		}

		return tx.Model(&entity.Restaurant{}).Where("id = ?", rest.ID).
			Updates(map[string]any{"daily_tab_counter": counter, "last_tab_reset": now}).Error
	})
	if err != nil {
		return nil, err
	}

	s.feed.Notify(tab.TableID)
	return tab, nil
}

// AddOrder เพิ่มรอบสั่งเข้า tab ที่ยังเปิดอยู่
// ตรวจรายการด้วย billing ก่อนเขียนเสมอ — ข้อมูลเพี้ยนต้องตายก่อนถึง store
func (s *TabService) AddOrder(tabID string, items []entity.OrderItem) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, errors.New("order needs at least one item")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, errors.New("item name is required")
		}
		if _, err := billing.LineTotal(item); err != nil {
			return nil, err
		}
	}

	tab, err := s.repo.Get(tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}
	if tab.Status != entity.TabOpen {
		return nil, ErrTabClosed
	}

	order := &entity.Order{TabID: tab.ID, Items: items}
	if err := s.repo.CreateOrder(s.db, order); err != nil {
		return nil, err
	}

	s.feed.Notify(tab.TableID)
	return order, nil
}

// CloseTab ปิด tab (open → closed ครั้งเดียว)
// สำเร็จแล้วแค่ Notify — tab จะหายจาก open set เองตอน snapshot รอบถัดไป
// ล้มเหลว = ไม่มีอะไรเปลี่ยน ทั้งใน store และใน projection ของทุก client
func (s *TabService) CloseTab(tabID string) error {
	tab, err := s.repo.Get(tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTabNotFound
		}
		return err
	}
	if tab.Status == entity.TabClosed {
		return ErrTabClosed
	}

	ok, err := s.repo.CloseOpen(s.db, tabID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		// แพ้ race: client อื่นปิดตัดหน้าไปแล้ว
		return ErrTabClosed
	}

	s.feed.Notify(tab.TableID)
	return nil
}

// ListOpenByTable = snapshot ปัจจุบันแบบ pull (สำหรับ client ที่ไม่ใช้ ws)
func (s *TabService) ListOpenByTable(tableID string) ([]entity.Tab, error) {
	if strings.TrimSpace(tableID) == "" {
		return []entity.Tab{}, nil
	}
	return s.repo.ListOpenByTable(tableID)
}

func (s *TabService) ListOpenByRestaurant(restID uint) ([]entity.Tab, error) {
	return s.repo.ListOpenByRestaurant(restID)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
