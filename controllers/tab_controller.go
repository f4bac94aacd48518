package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/billing"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type TabController struct {
	tabs *services.TabService
}

func NewTabController(tabs *services.TabService) *TabController {
	return &TabController{tabs: tabs}
}

// ===== Open Tab =====

type CreateTabReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
}

// POST /tables/:tableId/tabs (ลูกค้า scan QR เข้ามาเปิด tab)
func (tc *TabController) Create(c *gin.Context) {
	tableID := c.Param("tableId")

	var req CreateTabReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	tab, err := tc.tabs.CreateTab(req.RestaurantID, tableID, req.CustomerName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, tab)
}

// ===== Add Order =====

type OrderItemIn struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}
type AddOrderReq struct {
	Items []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// POST /tabs/:id/orders
func (tc *TabController) AddOrder(c *gin.Context) {
	tabID := c.Param("id")

	var req AddOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	order, err := tc.tabs.AddOrder(tabID, items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTabNotFound):
			resp.NotFound(c, "tab not found")
		case errors.Is(err, services.ErrTabClosed):
			resp.Conflict(c, "tab already closed")
		case errors.Is(err, billing.ErrNegativePrice), errors.Is(err, billing.ErrBadQuantity):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// ===== Close Tab =====

// POST /partner/tabs/:id/close (waiter เท่านั้น)
// แค่สั่งปิดที่ store — ไม่ไปยุ่งกับ projection ฝั่งไหนทั้งนั้น
// tab จะหายจากจอทุกจอเองตอน snapshot รอบถัดไป
func (tc *TabController) Close(c *gin.Context) {
	tabID := c.Param("id")

	if err := tc.tabs.CloseTab(tabID); err != nil {
		switch {
		case errors.Is(err, services.ErrTabNotFound):
			resp.NotFound(c, "tab not found")
		case errors.Is(err, services.ErrTabClosed):
			resp.Conflict(c, "tab already closed")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": tabID, "status": entity.TabClosed})
}

// ===== Read side =====

// GET /tables/:tableId/tabs → open set ปัจจุบัน + ยอดเงิน (สำหรับ client ที่ poll)
// ไม่มี tab = list ว่าง ไม่ใช่ error
func (tc *TabController) ListForTable(c *gin.Context) {
	tabs, err := tc.tabs.ListOpenByTable(c.Param("tableId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	views, err := services.BuildTabViews(tabs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}

// GET /partner/tabs → open tabs ทุกโต๊ะของร้าน (waiter dashboard)
func (tc *TabController) ListForRestaurant(c *gin.Context) {
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		resp.Unauthorized(c, "missing restaurant scope")
		return
	}

	tabs, err := tc.tabs.ListOpenByRestaurant(restID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	views, err := services.BuildTabViews(tabs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}
