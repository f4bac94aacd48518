package entity

// สถานะของ tab ตรงกับ enum ที่ frontend ใช้
const (
	TabOpen   = "open"
	TabClosed = "closed"
)
