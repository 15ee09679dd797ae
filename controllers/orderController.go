package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/middlewares"
	"github.com/mishti/sweetshop-api/models"
	"gorm.io/gorm"
)

const msgOrderNotFound = "Order not found"

// CreateOrder places an order for the authenticated customer. Stock is
// validated against the live catalog but not reserved; deduction happens
// at approval time.
func CreateOrder(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orderData models.CreateOrderData
	if err := ctx.ShouldBindJSON(&orderData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if len(orderData.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No items in order")
		return
	}

	if orderData.PaymentMethod != models.PaymentMethodCOD && orderData.PaymentMethod != models.PaymentMethodUPI {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please select a valid payment method (COD or UPI)")
		return
	}

	if orderData.PaymentMethod == models.PaymentMethodUPI && orderData.UpiTransactionID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "UPI Transaction ID is required for UPI payment")
		return
	}

	var orderItems []models.OrderItem
	var totalAmount float64
	for _, line := range orderData.Items {
		var sweet models.Sweet
		if result := initializers.DB.First(&sweet, line.SweetID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Sweet with ID %d not found", line.SweetID))
			} else {
				logger.Error().Err(result.Error).Msg("Unable to retrieve sweet")
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve sweet")
			}
			return
		}

		if sweet.Quantity < line.Quantity {
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock for "+sweet.Name)
			return
		}

		orderItems = append(orderItems, models.OrderItem{
			SweetID:  sweet.ID,
			Name:     sweet.Name,
			Category: sweet.Category,
			Price:    sweet.Price,
			Quantity: line.Quantity,
		})
		totalAmount += sweet.Price * float64(line.Quantity)
	}

	paymentStatus := models.PaymentStatusPending
	if orderData.PaymentMethod == models.PaymentMethodUPI {
		paymentStatus = models.PaymentStatusCompleted
	}

	order := models.Order{
		UserID:           user.ID,
		Items:            orderItems,
		TotalAmount:      totalAmount,
		PaymentMethod:    orderData.PaymentMethod,
		PaymentStatus:    paymentStatus,
		UpiTransactionID: orderData.UpiTransactionID,
		Status:           models.OrderStatusPending,
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Msg("Order creation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error().Err(err).Msg("Order commit error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	order.User = &user

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": fmt.Sprintf("Order created successfully! Payment method: %s. Waiting for admin approval.", strings.ToUpper(orderData.PaymentMethod)),
		"data":    order,
	})
}

// GetUserOrders returns the caller's orders, newest first.
func GetUserOrders(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Unable to fetch orders")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"data":    orders,
	})
}

// GetAllOrders returns every order with customer details. Admin only.
func GetAllOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Preload("User").
		Preload("Items").
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Unable to fetch orders")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"data":    orders,
	})
}

// ApproveOrder transitions a pending order to approved, deducting stock
// line by line. A failing line aborts the approval but earlier lines keep
// their deductions; the order stays pending.
func ApproveOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("Items").First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			logger.Error().Err(result.Error).Msg("Unable to retrieve order")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve order")
		}
		return
	}

	if order.Status != models.OrderStatusPending {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is already "+order.Status)
		return
	}

	for _, item := range order.Items {
		var sweet models.Sweet
		if result := initializers.DB.First(&sweet, item.SweetID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgSweetNotFound)
			} else {
				logger.Error().Err(result.Error).Msg("Unable to retrieve sweet")
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve sweet")
			}
			return
		}

		ok, err := adjustStock(sweet.ID, -item.Quantity)
		if err != nil {
			logger.Error().Err(err).Msg("Stock decrement error during approval")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if !ok {
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock for "+sweet.Name)
			return
		}
	}

	if result := initializers.DB.Model(&order).Update("status", models.OrderStatusApproved); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Order approval error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to approve order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order approved successfully",
		"data":    order,
	})
}

// RejectOrder transitions a pending order to rejected. No stock effect.
func RejectOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	// Body is optional; an absent reason gets a placeholder.
	var rejectData models.RejectOrderData
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&rejectData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			logger.Error().Err(result.Error).Msg("Unable to retrieve order")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve order")
		}
		return
	}

	if order.Status != models.OrderStatusPending {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is already "+order.Status)
		return
	}

	reason := rejectData.Reason
	if reason == "" {
		reason = "No reason provided"
	}

	result := initializers.DB.Model(&order).Updates(map[string]any{
		"status":           models.OrderStatusRejected,
		"rejection_reason": reason,
	})
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Order rejection error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to reject order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order rejected",
		"data":    order,
	})
}

// CancelOrder lets the owning customer delete a still-pending order.
func CancelOrder(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			logger.Error().Err(result.Error).Msg("Unable to retrieve order")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve order")
		}
		return
	}

	if order.UserID != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, "Not authorized to cancel this order")
		return
	}

	if order.Status != models.OrderStatusPending {
		sendErrorResponse(ctx, http.StatusBadRequest, "Can only cancel pending orders")
		return
	}

	if result := initializers.DB.Unscoped().Where("order_id = ?", order.ID).Delete(&models.OrderItem{}); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Order item deletion error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	if result := initializers.DB.Unscoped().Delete(&order); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Order deletion error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled successfully",
	})
}
