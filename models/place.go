package models

import "time"

type Location struct {
	Lat float64 `gorm:"not null;type:decimal(10,8)" json:"lat"`
	Lng float64 `gorm:"not null;type:decimal(11,8)" json:"lng"`
}

// Place is a shared point of interest. CreatorID and Location are set at
// creation and never change; the creator's User.Places array mirrors
// ownership and is updated in the same transaction as the place itself.
type Place struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"not null" json:"image"`
	Address     string    `gorm:"not null" json:"address"`
	Location    Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	CreatorID   uint      `gorm:"not null;index" json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
