package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type WaiterLoginReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	PIN          string `json:"pin" binding:"required,len=4,numeric"`
}

// POST /auth/waiter-login → ตรวจ PIN แล้วออก token
func (ac *AuthController) WaiterLogin(c *gin.Context) {
	var req WaiterLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, waiter, err := ac.auth.WaiterLogin(req.RestaurantID, req.Name, req.PIN)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, gin.H{"token": token, "waiter": waiter})
}
