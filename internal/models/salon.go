package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner   Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255;not null" json:"address"`
	City        string `gorm:"size:100;not null" json:"city"`
	Area        string `gorm:"size:100" json:"area"`
	Description string `gorm:"size:500" json:"description"`

	Gender string `gorm:"size:10;default:'Unisex'" json:"gender"`

	Rating        float64 `gorm:"default:0" json:"rating"`
	Reviews       int     `gorm:"default:0" json:"reviews"`
	StartingPrice float64 `gorm:"default:0" json:"starting_price"`

	Image string `gorm:"size:500" json:"image"`

	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
