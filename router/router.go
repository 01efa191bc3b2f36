package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/passione-app/passione-backend/controllers"
	"github.com/passione-app/passione-backend/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	sessionCtrl := controllers.NewSessionController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World from Passione Backend"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Menu browsing
	r.GET("/restaurants/:restaurant_id/menu", menuCtrl.GetRestaurantMenu)
	r.GET("/dishes", menuCtrl.GetDishes)
	r.GET("/dishes/:dish_id", menuCtrl.GetDishByID)

	// Tables
	r.GET("/tables/qr/:qr_code", tableCtrl.GetTableByQR)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.GET("/tables/:table_id/qrcode.png", tableCtrl.GetTableQRImage)

	// Sessions
	r.POST("/sessions", sessionCtrl.CreateSession)
	r.GET("/sessions/:session_id", sessionCtrl.GetSession)

	// Carts
	r.GET("/carts/:session_id", cartCtrl.GetCart)
	r.POST("/carts/:session_id/items", cartCtrl.AddCartItem)
	r.GET("/cart-items/:item_id", cartCtrl.GetCartItem)
	r.PATCH("/cart-items/:item_id", cartCtrl.UpdateCartItem)
	r.DELETE("/cart-items/:item_id", cartCtrl.DeleteCartItem)

	// Orders
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/orders/:order_id/status", orderCtrl.GetOrderStatus)
	r.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	return r
}
