package services

import (
	"time"

	"backend/entity"
	"backend/pkg/billing"
)

// DTO สำหรับ presentation: tab + ยอดเงินที่คำนวณแล้ว
// ใช้ร่วมกันทั้ง REST กับ ws frame

type OrderView struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []entity.OrderItem `json:"items"`
	Total     int64              `json:"total"`
}

type TabView struct {
	ID              string      `json:"id"`
	TableID         string      `json:"tableId"`
	RestaurantID    uint        `json:"restaurantId"`
	CustomerName    string      `json:"customerName"`
	ReferenceNumber string      `json:"referenceNumber"`
	Status          string      `json:"status"`
	ClosedAt        *time.Time  `json:"closedAt,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	Orders          []OrderView `json:"orders"`
	Total           int64       `json:"total"`
}

func BuildTabView(tab entity.Tab) (TabView, error) {
	v := TabView{
		ID:              tab.ID,
		TableID:         tab.TableID,
		RestaurantID:    tab.RestaurantID,
		CustomerName:    tab.CustomerName,
		ReferenceNumber: tab.ReferenceNumber,
		Status:          tab.Status,
		ClosedAt:        tab.ClosedAt,
		CreatedAt:       tab.CreatedAt,
		Orders:          make([]OrderView, 0, len(tab.Orders)),
	}
	for _, order := range tab.Orders {
		total, err := billing.OrderTotal(order)
		if err != nil {
			return TabView{}, err
		}
		v.Orders = append(v.Orders, OrderView{
			ID:        order.ID,
			CreatedAt: order.CreatedAt,
			Items:     order.Items,
			Total:     total,
		})
		v.Total += total
	}
	return v, nil
}

func BuildTabViews(tabs []entity.Tab) ([]TabView, error) {
	out := make([]TabView, 0, len(tabs))
	for _, tab := range tabs {
		v, err := BuildTabView(tab)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
