package config

import "github.com/shopspring/decimal"

const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelElectric = "electric"
	FuelHybrid   = "hybrid"

	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"
	TransmissionCvt       = "cvt"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	CarsPerPage      = 12
	OrdersPerPage    = 10
	FavoritesPerPage = 12

	RecentReviewsLimit = 5
	SimilarCarsLimit   = 4
	FeaturedCarsLimit  = 3
)

var (
	FuelTypes     = []string{FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid}
	Transmissions = []string{TransmissionManual, TransmissionAutomatic, TransmissionCvt}

	// Addon fees, billed per rental day.
	ChildSeatPerDay        = decimal.NewFromInt(500)
	AdditionalDriverPerDay = decimal.NewFromInt(300)
	InsurancePerDay        = decimal.NewFromInt(800)

	FeaturedRatingFloor = decimal.NewFromInt(4)
)
