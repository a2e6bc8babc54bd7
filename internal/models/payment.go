package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RentalID uint   `gorm:"uniqueIndex;not null" json:"rental_id"`
	Rental   Rental `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"rental"`

	Amount float64 `gorm:"not null" json:"amount"`
	Method string  `gorm:"size:30" json:"method"`
	Status string  `gorm:"size:20;default:'completed'" json:"status"`

	TransactionRef string `gorm:"size:64;uniqueIndex" json:"transaction_ref"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
