package main

import (
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"github.com/mishti/sweetshop-api/utils"
	"golang.org/x/crypto/bcrypt"
)

var logger = utils.NewLogger("createadmin")

const (
	adminEmail    = "admin@sweetshop.com"
	adminPassword = "admin123"
)

func main() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()

	var existing models.User
	if result := initializers.DB.Where("email = ?", adminEmail).Find(&existing); result.Error != nil {
		logger.Fatal().Err(result.Error).Msg("Failed to check for existing admin")
	} else if result.RowsAffected > 0 {
		logger.Info().Str("email", adminEmail).Msg("Admin already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to hash admin password")
	}

	admin := models.User{
		Name:     "Admin User",
		Email:    adminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if result := initializers.DB.Create(&admin); result.Error != nil {
		logger.Fatal().Err(result.Error).Msg("Failed to create admin")
	}

	logger.Info().Str("email", admin.Email).Str("role", string(admin.Role)).Msg("Admin created successfully")
}
