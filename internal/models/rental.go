package models

import "time"

type Rental struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ItemID uint `gorm:"index" json:"item_id"`
	Item   Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"item"`

	RenterID uint `gorm:"index" json:"renter_id"`
	Renter   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"renter"`

	// Inclusive on both ends: the end date is a rented day.
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	TotalPrice float64 `gorm:"not null" json:"total_price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
