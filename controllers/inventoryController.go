package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"gorm.io/gorm"
)

// adjustStock applies a conditional single-row quantity update. The WHERE
// guard keeps quantity from ever going negative; zero rows affected means
// the guard failed against live stock.
func adjustStock(sweetId uint, delta int) (bool, error) {
	query := initializers.DB.Model(&models.Sweet{}).Where("id = ?", sweetId)
	if delta < 0 {
		query = query.Where("quantity >= ?", -delta)
	}
	result := query.UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// PurchaseSweet decrements stock for a direct purchase.
func PurchaseSweet(ctx *gin.Context) {
	sweetId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid sweet ID")
		return
	}

	var purchaseData models.QuantityData
	if err := ctx.ShouldBindJSON(&purchaseData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please provide a valid quantity")
		return
	}

	var sweet models.Sweet
	if result := initializers.DB.First(&sweet, sweetId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgSweetNotFound)
		} else {
			logger.Error().Err(result.Error).Msg("Unable to retrieve sweet")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve sweet")
		}
		return
	}

	ok, err := adjustStock(sweet.ID, -purchaseData.Quantity)
	if err != nil {
		logger.Error().Err(err).Msg("Stock decrement error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock")
		return
	}

	if result := initializers.DB.First(&sweet, sweetId); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Unable to reload sweet after purchase")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase successful",
		"data":    sweet,
	})
}

// RestockSweet increments stock. Admin only.
func RestockSweet(ctx *gin.Context) {
	sweetId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid sweet ID")
		return
	}

	var restockData models.QuantityData
	if err := ctx.ShouldBindJSON(&restockData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please provide a valid quantity")
		return
	}

	var sweet models.Sweet
	if result := initializers.DB.First(&sweet, sweetId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgSweetNotFound)
		} else {
			logger.Error().Err(result.Error).Msg("Unable to retrieve sweet")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve sweet")
		}
		return
	}

	if _, err := adjustStock(sweet.ID, restockData.Quantity); err != nil {
		logger.Error().Err(err).Msg("Stock increment error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if result := initializers.DB.First(&sweet, sweetId); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Unable to reload sweet after restock")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Restock successful",
		"data":    sweet,
	})
}
