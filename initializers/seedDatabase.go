package initializers

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/Nasipbek2003/rentacar/config"
	"github.com/Nasipbek2003/rentacar/models"
)

// SeedDatabase fills an empty database with a small demo catalog so a
// fresh install renders something. It does nothing when cars exist.
func SeedDatabase() {
	var count int64
	if err := DB.Model(&models.Car{}).Count(&count).Error; err != nil {
		log.Println("seed skipped: " + err.Error())
		return
	}
	if count > 0 {
		return
	}

	economy := models.CarCategory{Name: "Economy", Description: "Affordable day-to-day cars"}
	suv := models.CarCategory{Name: "SUV", Description: "Crossovers and off-road"}
	premium := models.CarCategory{Name: "Premium", Description: "Business and luxury class"}
	for _, category := range []*models.CarCategory{&economy, &suv, &premium} {
		if err := DB.Create(category).Error; err != nil {
			log.Println("seed category failed: " + err.Error())
			return
		}
	}

	cars := []models.Car{
		{
			Name: "Toyota Corolla", Brand: "Toyota", CarModel: "Corolla", Year: 2021,
			CategoryID: &economy.ID, PricePerDay: decimal.NewFromInt(2000),
			Description: "Reliable compact sedan", FuelType: config.FuelPetrol,
			Transmission: config.TransmissionAutomatic, Seats: 5, Doors: 4,
			Available: true, AirConditioning: true, Bluetooth: true,
		},
		{
			Name: "Hyundai Tucson", Brand: "Hyundai", CarModel: "Tucson", Year: 2022,
			CategoryID: &suv.ID, PricePerDay: decimal.NewFromInt(3500),
			Description: "Comfortable family crossover", FuelType: config.FuelDiesel,
			Transmission: config.TransmissionAutomatic, Seats: 5, Doors: 5,
			Available: true, AirConditioning: true, Gps: true, ReverseCamera: true,
		},
		{
			Name: "BMW 520i", Brand: "BMW", CarModel: "520i", Year: 2023,
			CategoryID: &premium.ID, PricePerDay: decimal.NewFromInt(8000),
			Description: "Business sedan", FuelType: config.FuelPetrol,
			Transmission: config.TransmissionAutomatic, Seats: 5, Doors: 4,
			Available: true, AirConditioning: true, Gps: true, Bluetooth: true,
			ParkingSensors: true, ReverseCamera: true,
		},
	}
	for i := range cars {
		if err := DB.Create(&cars[i]).Error; err != nil {
			log.Println("seed car failed: " + err.Error())
			return
		}
	}
	log.Println("seeded demo catalog")
}
