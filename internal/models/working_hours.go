package models

import "time"

// WorkingHours holds the open window for one salon on one weekday.
// Weekday is the canonical 0..6 integer (Sunday = 0, matching
// time.Weekday); weekday names never reach storage.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `gorm:"uniqueIndex:idx_salon_weekday;not null" json:"salon_id"`
	Weekday int  `gorm:"uniqueIndex:idx_salon_weekday;not null" json:"weekday"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	IsClosed  bool   `gorm:"default:false" json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
