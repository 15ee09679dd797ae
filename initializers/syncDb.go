package initializers

import (
	"github.com/mishti/sweetshop-api/models"
)

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.User{}, &models.Sweet{}, &models.Order{}, &models.OrderItem{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database synced successfully")
}
