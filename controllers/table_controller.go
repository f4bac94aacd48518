package controllers

import (
	"strconv"

	"backend/configs"
	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	cfg *configs.Config
}

func NewTableController(cfg *configs.Config) *TableController {
	return &TableController{cfg: cfg}
}

// GET /tables/:tableId/url?restaurantId= → URL ที่เอาไปทำ QR ของโต๊ะ
func (tc *TableController) TabURL(c *gin.Context) {
	tableID := c.Param("tableId")
	restID, err := strconv.ParseUint(c.Query("restaurantId"), 10, 64)
	if err != nil || restID == 0 {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	resp.OK(c, gin.H{
		"url": utils.BuildTabURL(tc.cfg.PublicBaseURL, uint(restID), tableID),
	})
}
