package initializers

import "github.com/azharhussaincs/prohomezmain/models"

func SyncDatabase() {
	DB.AutoMigrate(&models.Vendor{}, &models.Product{}, &models.Media{}, &models.Order{})
}
