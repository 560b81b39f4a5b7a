package models

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	Name         string           `gorm:"size:100" json:"name"`
	Brand        string           `gorm:"size:50" json:"brand"`
	CarModel     string           `gorm:"column:model;size:50" json:"model"`
	Year         int              `json:"year"`
	CategoryID   *uint            `json:"category_id"`
	Category     *CarCategory     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PricePerDay  decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price_per_day"`
	PricePerHour *decimal.Decimal `gorm:"type:decimal(8,2)" json:"price_per_hour,omitempty"`
	Images       pq.StringArray   `gorm:"type:text[]" json:"images"`
	Available    bool             `gorm:"default:true" json:"available"`
	Description  string           `gorm:"type:text" json:"description"`

	FuelType     string           `gorm:"size:10;default:petrol" json:"fuel_type"`
	Transmission string           `gorm:"size:10;default:manual" json:"transmission"`
	Seats        int              `gorm:"default:5" json:"seats"`
	Doors        int              `gorm:"default:4" json:"doors"`
	EngineVolume *decimal.Decimal `gorm:"type:decimal(3,1)" json:"engine_volume,omitempty"`
	Power        *int             `json:"power,omitempty"`

	AirConditioning bool `gorm:"default:true" json:"air_conditioning"`
	Gps             bool `json:"gps"`
	Bluetooth       bool `json:"bluetooth"`
	ParkingSensors  bool `json:"parking_sensors"`
	ReverseCamera   bool `json:"reverse_camera"`

	Slug string `gorm:"size:200;unique" json:"slug"`

	Rating       decimal.Decimal `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
}

// BaseSlug derives the slug from brand, model and year, without any
// collision suffix.
func (car *Car) BaseSlug() string {
	return slug.Make(fmt.Sprintf("%s %s %d", car.Brand, car.CarModel, car.Year))
}

// BeforeCreate fills the slug when it was left empty. Two cars sharing
// brand, model and year get a numeric suffix so the unique index holds.
func (car *Car) BeforeCreate(tx *gorm.DB) error {
	if car.Slug != "" {
		return nil
	}
	base := car.BaseSlug()
	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := tx.Model(&Car{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	car.Slug = candidate
	return nil
}

// RecalculateCarRating recomputes the car's aggregate rating (mean of
// all its review ratings, two decimals, zero when there are none) and
// its review count, and writes both back onto the car row. Callers run
// it inside the same transaction as the review write.
func RecalculateCarRating(tx *gorm.DB, carID uint) error {
	var stats struct {
		Total int64
		Count int64
	}
	if err := tx.Raw("SELECT COALESCE(SUM(rating), 0) AS total, COUNT(id) AS count FROM reviews WHERE car_id = ?", carID).Scan(&stats).Error; err != nil {
		return err
	}
	rating := decimal.Zero
	if stats.Count > 0 {
		rating = decimal.NewFromInt(stats.Total).Div(decimal.NewFromInt(stats.Count)).Round(2)
	}
	return tx.Model(&Car{}).Where("id = ?", carID).Updates(map[string]interface{}{
		"rating":        rating,
		"reviews_count": stats.Count,
	}).Error
}
