package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
