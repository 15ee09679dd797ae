package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishti/sweetshop-api/controllers"
	"github.com/mishti/sweetshop-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetUserOrders)
		orders.GET("/all", middlewares.RequireAdmin(), controllers.GetAllOrders)
		orders.PUT("/:id/approve", middlewares.RequireAdmin(), controllers.ApproveOrder)
		orders.PUT("/:id/reject", middlewares.RequireAdmin(), controllers.RejectOrder)
		orders.DELETE("/:id", controllers.CancelOrder)
	}
}
