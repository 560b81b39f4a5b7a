package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/config"
)

type Order struct {
	gorm.Model
	UserID uint `json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
	CarID  uint `json:"car_id"`
	Car    Car  `gorm:"foreignKey:CarID" json:"car"`

	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	PickupLocation string          `gorm:"size:200" json:"pickup_location"`
	ReturnLocation string          `gorm:"size:200" json:"return_location"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Status         string          `gorm:"size:20;default:pending" json:"status"`

	ChildSeat        bool `json:"child_seat"`
	AdditionalDriver bool `json:"additional_driver"`
	Insurance        bool `json:"insurance"`

	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:256" json:"email"`
	Notes string `gorm:"type:text" json:"notes"`
}

// DurationDays counts the whole days a rental spans, both endpoint
// dates included. The clock time is ignored.
func DurationDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// CalculateTotalPrice prices a rental: the day rate times the duration
// plus the flat per-day addon fees. A range that ends before it starts
// is not rejected here and yields a non-positive total.
func CalculateTotalPrice(pricePerDay decimal.Decimal, start, end time.Time, childSeat, additionalDriver, insurance bool) decimal.Decimal {
	days := decimal.NewFromInt(int64(DurationDays(start, end)))
	total := pricePerDay.Mul(days)
	if childSeat {
		total = total.Add(config.ChildSeatPerDay.Mul(days))
	}
	if additionalDriver {
		total = total.Add(config.AdditionalDriverPerDay.Mul(days))
	}
	if insurance {
		total = total.Add(config.InsurancePerDay.Mul(days))
	}
	return total
}
