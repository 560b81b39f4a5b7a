package models

type CarCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
