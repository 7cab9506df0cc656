package models

import "time"

// Stock is stored as a small unsigned range; writes outside [0,255] are
// rejected before they reach the database.
const MaxCountInStock = 255

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	RichDescription string    `json:"richDescription"`
	Image           string    `json:"image"`
	Brand           string    `json:"brand"`
	Price           float64   `gorm:"default:0" json:"price"`
	CategoryID      uint      `gorm:"not null;index" json:"categoryId"`
	Category        Category  `gorm:"foreignKey:CategoryID" json:"category"`
	CountInStock    int       `gorm:"not null" json:"countInStock"`
	Rating          float64   `json:"rating"`
	NumReviews      int       `json:"numReviews"`
	IsFeatured      bool      `json:"isFeatured"`
	DateCreated     time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}
