package main

import (
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"github.com/mishti/sweetshop-api/utils"
)

var logger = utils.NewLogger("seed")

var sampleSweets = []models.Sweet{
	{Name: "Dairy Milk Chocolate", Category: "chocolate", Price: 50, Quantity: 100, Description: "Delicious milk chocolate bar from Cadbury"},
	{Name: "KitKat Chunky", Category: "chocolate", Price: 40, Quantity: 150, Description: "Crispy wafer covered in smooth chocolate"},
	{Name: "Mango Bite", Category: "candy", Price: 5, Quantity: 200, Description: "Tangy and sweet mango flavored candy"},
	{Name: "Eclairs", Category: "candy", Price: 10, Quantity: 180, Description: "Rich chocolate and caramel candy"},
	{Name: "Jelly Belly Gummies", Category: "gummy", Price: 120, Quantity: 80, Description: "Assorted fruit-flavored gummy bears"},
	{Name: "Alpenliebe Lollipop", Category: "lollipop", Price: 15, Quantity: 250, Description: "Creamy caramel lollipop"},
	{Name: "Pulse Candy", Category: "hard-candy", Price: 2, Quantity: 300, Description: "Tangy kachi kairi hard candy"},
	{Name: "5 Star", Category: "chocolate", Price: 20, Quantity: 120, Description: "Chocolate with caramel and nougat"},
	{Name: "Perk", Category: "chocolate", Price: 10, Quantity: 200, Description: "Wafer chocolate bar"},
	{Name: "Melody", Category: "candy", Price: 5, Quantity: 220, Description: "Chocolaty and caramelly candy"},
}

func main() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()

	if result := initializers.DB.Unscoped().Where("1 = 1").Delete(&models.Sweet{}); result.Error != nil {
		logger.Fatal().Err(result.Error).Msg("Failed to clear existing sweets")
	}

	if result := initializers.DB.Create(&sampleSweets); result.Error != nil {
		logger.Fatal().Err(result.Error).Msg("Failed to seed sweets")
	}

	logger.Info().Int("count", len(sampleSweets)).Msg("Sample sweets seeded successfully")
}
