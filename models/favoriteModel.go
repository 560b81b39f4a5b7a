package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// A favorite exists while its row exists; there is no flag column.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorites_user_car" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CarID     uint      `gorm:"uniqueIndex:idx_favorites_user_car" json:"car_id"`
	Car       Car       `gorm:"foreignKey:CarID" json:"car"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleFavorite flips the (user, car) favorite row: deletes it when it
// exists, creates it when it does not. Returns the resulting state and
// the car's favorite count after the toggle.
func ToggleFavorite(db *gorm.DB, userID, carID uint) (isFavorite bool, count int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var favorite Favorite
		switch err := tx.Where("user_id = ? AND car_id = ?", userID, carID).First(&favorite).Error; {
		case err == nil:
			if err := tx.Delete(&favorite).Error; err != nil {
				return err
			}
			isFavorite = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorite = Favorite{UserID: userID, CarID: carID}
			if err := tx.Create(&favorite).Error; err != nil {
				return err
			}
			isFavorite = true
		default:
			return err
		}
		return tx.Model(&Favorite{}).Where("car_id = ?", carID).Count(&count).Error
	})
	return isFavorite, count, err
}

// IsFavorited reports whether the user has favorited the car.
func IsFavorited(db *gorm.DB, userID, carID uint) (bool, error) {
	var count int64
	err := db.Model(&Favorite{}).Where("user_id = ? AND car_id = ?", userID, carID).Count(&count).Error
	return count > 0, err
}
