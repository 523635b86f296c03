package models

import "time"

type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	SalonID *uint `json:"salon_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
