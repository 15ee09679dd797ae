package initializers

import (
	"github.com/joho/godotenv"
	"github.com/mishti/sweetshop-api/utils"
)

var logger = utils.NewLogger("initializers")

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("No .env file found, relying on environment variables")
	}
}
