package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"uniqueIndex" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
	Phone         string     `gorm:"size:20" json:"phone"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	DriverLicense string     `gorm:"size:50" json:"driver_license"`
	Avatar        string     `json:"avatar"`
	CreatedAt     time.Time  `json:"created_at"`
}

// GetOrCreateProfile returns the user's profile, creating an empty one
// when none exists yet. A missing profile is never an error.
func GetOrCreateProfile(db *gorm.DB, userID uint) (UserProfile, error) {
	var profile UserProfile
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		profile = UserProfile{UserID: userID}
		return tx.Create(&profile).Error
	})
	return profile, err
}
