package models

import "time"

// Medida con unidad libre ("years", "months", "kg", "lb")
type Measure struct {
	Number float64 `json:"number"`
	Unit   string  `gorm:"size:20" json:"unit"`
}

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Type   string `gorm:"size:20" json:"type"`
	Gender string `gorm:"size:20" json:"gender"`
	Breed  string `gorm:"size:100" json:"breed"`
	Size   string `gorm:"size:20" json:"size"`

	Age    Measure `gorm:"embedded;embeddedPrefix:age_" json:"age"`
	Weight Measure `gorm:"embedded;embeddedPrefix:weight_" json:"weight"`

	PicURL string `gorm:"size:255" json:"pic_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
