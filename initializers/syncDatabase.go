package initializers

import "github.com/Nasipbek2003/rentacar/models"

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.UserProfile{}, &models.CarCategory{}, &models.Car{}, &models.Order{}, &models.Review{}, &models.Favorite{})
}
