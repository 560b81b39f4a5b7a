package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Nasipbek2003/rentacar/config"
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviews_user_car" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CarID     uint      `gorm:"uniqueIndex:idx_reviews_user_car" json:"car_id"`
	Car       Car       `gorm:"foreignKey:CarID" json:"-"`
	OrderID   *uint     `gorm:"unique" json:"order_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// HasRented reports whether the user has an order for the car in a
// state that allows reviewing it.
func HasRented(db *gorm.DB, userID, carID uint) (bool, error) {
	var count int64
	err := db.Model(&Order{}).
		Where("user_id = ? AND car_id = ? AND status IN ?", userID, carID,
			[]string{config.OrderStatusCompleted, config.OrderStatusActive}).
		Count(&count).Error
	return count > 0, err
}

// UpsertReview creates the user's review for a car, or updates the
// existing one in place so at most one review per (user, car) exists.
// The car's aggregate rating is recomputed in the same transaction.
func UpsertReview(db *gorm.DB, userID, carID uint, rating int, comment string) (Review, error) {
	var review Review
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND car_id = ?", userID, carID).First(&review).Error
		switch {
		case err == nil:
			review.Rating = rating
			review.Comment = comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = Review{UserID: userID, CarID: carID, Rating: rating, Comment: comment}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return RecalculateCarRating(tx, carID)
	})
	return review, err
}
