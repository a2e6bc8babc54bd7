package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
