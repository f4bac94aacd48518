package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildTabURL = URL ที่ QR code ของโต๊ะชี้ไป ลูกค้า scan แล้วเข้าหน้าเปิด tab
// ฝั่งนี้ส่งแค่ string — ตัว render รูป QR เป็นเรื่องของ frontend
func BuildTabURL(base string, restaurantID uint, tableID string) string {
	base = strings.TrimRight(base, "/")
	return fmt.Sprintf("%s/t/%d/%s", base, restaurantID, url.PathEscape(tableID))
}
