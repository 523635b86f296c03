package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Customer-facing lookup code, never reused.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	SalonID uint  `gorm:"index;not null" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	OwnerID uint `gorm:"index;not null" json:"owner_id"`

	StaffID uint  `gorm:"index;not null" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	TotalPrice    float64 `gorm:"not null" json:"total_price"`
	TotalDuration int     `gorm:"not null" json:"total_duration"`

	StartAt time.Time `gorm:"index;not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
