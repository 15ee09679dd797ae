package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Sweet Shop API 🍬. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account

SWEETS
- POST "/api/sweets" - Add a new sweet
- GET "/api/sweets" - Get all sweets
- GET "/api/sweets/search" - Search sweets by name, category and price range
- PUT "/api/sweets/{id}" - Update a sweet
- DELETE "/api/sweets/{id}" - Delete a sweet (admin)
- POST "/api/sweets/{id}/purchase" - Purchase a sweet
- POST "/api/sweets/{id}/restock" - Restock a sweet (admin)

ORDERS
- POST "/api/orders" - Place an order
- GET "/api/orders" - Get your order history
- GET "/api/orders/all" - Get all orders (admin)
- PUT "/api/orders/{id}/approve" - Approve an order (admin)
- PUT "/api/orders/{id}/reject" - Reject an order (admin)
- DELETE "/api/orders/{id}" - Cancel a pending order`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
