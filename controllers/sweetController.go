package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"gorm.io/gorm"
)

const msgSweetNotFound = "Sweet not found"

func sweetNameTaken(name string, excludeID uint) (bool, error) {
	var existing models.Sweet
	query := initializers.DB.Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	result := query.Find(&existing)
	return result.RowsAffected > 0, result.Error
}

// AddSweet creates a new catalog item.
func AddSweet(ctx *gin.Context) {
	var sweetData models.CreateSweetData
	if err := ctx.ShouldBindJSON(&sweetData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	taken, err := sweetNameTaken(sweetData.Name, 0)
	if err != nil {
		logger.Error().Err(err).Msg("Database error during sweet name check")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if taken {
		sendErrorResponse(ctx, http.StatusBadRequest, "Sweet with this name already exists")
		return
	}

	sweet := models.Sweet{
		Name:        sweetData.Name,
		Category:    sweetData.Category,
		Price:       sweetData.Price,
		Quantity:    sweetData.Quantity,
		Description: sweetData.Description,
	}

	if result := initializers.DB.Create(&sweet); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Sweet creation error")
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create sweet")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "data": sweet})
}

// GetSweets returns the whole catalog.
func GetSweets(ctx *gin.Context) {
	var sweets []models.Sweet
	if result := initializers.DB.Find(&sweets); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Unable to fetch sweets")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch sweets")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"count":   len(sweets),
		"data":    sweets,
	})
}

// SearchSweets filters the catalog by name substring, category and price range.
// Every filter is optional; no filters returns the full catalog.
func SearchSweets(ctx *gin.Context) {
	query := initializers.DB.Model(&models.Sweet{})

	if name := ctx.Query("name"); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if minPrice := ctx.Query("minPrice"); minPrice != "" {
		value, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid minPrice")
			return
		}
		query = query.Where("price >= ?", value)
	}

	if maxPrice := ctx.Query("maxPrice"); maxPrice != "" {
		value, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		query = query.Where("price <= ?", value)
	}

	var sweets []models.Sweet
	if result := query.Find(&sweets); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Sweet search error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to search sweets")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"count":   len(sweets),
		"data":    sweets,
	})
}

// UpdateSweet applies a partial update to a catalog item.
func UpdateSweet(ctx *gin.Context) {
	sweetId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid sweet ID")
		return
	}

	var updateData models.UpdateSweetData
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
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

	if updateData.Name != nil && *updateData.Name != sweet.Name {
		taken, err := sweetNameTaken(*updateData.Name, sweet.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Database error during sweet name check")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if taken {
			sendErrorResponse(ctx, http.StatusBadRequest, "Sweet with this name already exists")
			return
		}
		sweet.Name = *updateData.Name
	}
	if updateData.Category != nil {
		sweet.Category = *updateData.Category
	}
	if updateData.Price != nil {
		sweet.Price = *updateData.Price
	}
	if updateData.Quantity != nil {
		sweet.Quantity = *updateData.Quantity
	}
	if updateData.Description != nil {
		sweet.Description = *updateData.Description
	}

	if result := initializers.DB.Save(&sweet); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Sweet update error")
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update sweet")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": sweet})
}

// DeleteSweet removes a catalog item permanently. Admin only.
func DeleteSweet(ctx *gin.Context) {
	sweetId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid sweet ID")
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

	if result := initializers.DB.Unscoped().Delete(&sweet); result.Error != nil {
		logger.Error().Err(result.Error).Msg("Sweet deletion error")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete sweet")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Sweet deleted successfully",
	})
}
