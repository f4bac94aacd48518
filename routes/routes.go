package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories / Services
	tabRepo := repository.NewTabRepository(db)
	waiterRepo := repository.NewWaiterRepository(db)
	feed := services.NewTabFeed(tabRepo)
	tabSvc := services.NewTabService(db, tabRepo, feed)
	authSvc := services.NewAuthService(waiterRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	tabCtrl := controllers.NewTabController(tabSvc)
	tableCtrl := controllers.NewTableController(cfg)
	authCtrl := controllers.NewAuthController(authSvc)
	stream := ws.NewTabStream(feed)

	// Auth (public)
	r.POST("/auth/waiter-login", authCtrl.WaiterLogin)

	// Customer (public — เข้ามาจาก QR ของโต๊ะ)
	r.POST("/tables/:tableId/tabs", tabCtrl.Create)
	r.GET("/tables/:tableId/tabs", tabCtrl.ListForTable)
	r.GET("/tables/:tableId/url", tableCtrl.TabURL)
	r.POST("/tabs/:id/orders", tabCtrl.AddOrder)

	// Live feed ของโต๊ะ (snapshot ทั้งก้อนทุกครั้งที่ข้อมูลเปลี่ยน)
	r.GET("/ws/tables/:tableId/tabs", stream.HandleWebSocket)

	// Partner (waiter ล็อกอินด้วย PIN แล้ว)
	partner := r.Group("/partner", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		partner.GET("/tabs", tabCtrl.ListForRestaurant)
		partner.POST("/tabs/:id/close", tabCtrl.Close)
	}
}
