package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mishti/sweetshop-api/controllers"
	"github.com/mishti/sweetshop-api/middlewares"
)

func SweetRoutes(server *gin.Engine) {
	sweets := server.Group("/api/sweets", middlewares.RequireAuth())
	{
		sweets.POST("", controllers.AddSweet)
		sweets.GET("", controllers.GetSweets)
		sweets.GET("/search", controllers.SearchSweets)
		sweets.PUT("/:id", controllers.UpdateSweet)
		sweets.DELETE("/:id", middlewares.RequireAdmin(), controllers.DeleteSweet)
		sweets.POST("/:id/purchase", controllers.PurchaseSweet)
		sweets.POST("/:id/restock", middlewares.RequireAdmin(), controllers.RestockSweet)
	}
}
