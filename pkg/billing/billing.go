package billing

import (
	"errors"
	"fmt"

	"backend/entity"
)

// ฟังก์ชันคิดเงินล้วน ๆ ไม่แตะ DB
// เงินทุกจำนวนเป็นหน่วยย่อย (สตางค์/cent)

var (
	ErrNegativePrice = errors.New("negative price")
	ErrBadQuantity   = errors.New("quantity must be positive")
)

// LineTotal = price * quantity (quantity 0 = ไม่ได้ส่งมา ตีเป็น 1)
// ข้อมูลเพี้ยน (ราคาติดลบ / จำนวนติดลบ) ต้อง error ดัง ๆ ห้ามเงียบ
func LineTotal(item entity.OrderItem) (int64, error) {
	if item.Price < 0 {
		return 0, fmt.Errorf("item %q: %w", item.Name, ErrNegativePrice)
	}
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return 0, fmt.Errorf("item %q: %w", item.Name, ErrBadQuantity)
	}
	return item.Price * int64(qty), nil
}

// OrderTotal = ยอดรวมของรอบสั่ง (ไม่มี items = 0)
func OrderTotal(order entity.Order) (int64, error) {
	var sum int64
	for _, item := range order.Items {
		line, err := LineTotal(item)
		if err != nil {
			return 0, err
		}
		sum += line
	}
	return sum, nil
}

// TabTotal = ยอดรวมทั้ง tab (ไม่มี orders = 0)
func TabTotal(tab entity.Tab) (int64, error) {
	var sum int64
	for _, order := range tab.Orders {
		total, err := OrderTotal(order)
		if err != nil {
			return 0, err
		}
		sum += total
	}
	return sum, nil
}
