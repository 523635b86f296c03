package models

import "time"

// Staff members form a fungible pool per salon: any member can
// fulfil any service, there is no per-staff skill constraint.
type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index;not null" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OwnerID uint `json:"owner_id"`

	Name string `gorm:"size:100;not null" json:"name"`
	Role string `gorm:"size:50;default:'Staff'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
