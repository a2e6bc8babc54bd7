package models

import "time"

// DateBlock marks a single calendar day unavailable for an item.
// The unique index on (item_id, date) is what keeps two rentals from
// ever holding the same day.
type DateBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ItemID uint      `gorm:"not null;uniqueIndex:idx_item_date" json:"item_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_item_date" json:"date"`

	Reason string `gorm:"size:20;not null" json:"reason"`

	// Nil for manual blocks; set for blocks materialized by a rental.
	RentalID *uint `gorm:"index" json:"rental_id"`

	CreatedAt time.Time `json:"created_at"`
}
