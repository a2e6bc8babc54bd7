package models

import "time"

type Item struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:100" json:"category"`
	PricePerDay float64 `gorm:"not null" json:"price_per_day"`
	Location    string  `gorm:"size:200" json:"location"`

	// Admin approval workflow: pending -> approved | rejected
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Owner-level on/off switch, independent of the calendar.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
