package models

import "time"

// Inventario por sucursal
type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint `gorm:"index" json:"branch_id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Quantity int     `json:"quantity"`
	Unit     string  `gorm:"size:20" json:"unit"`
	Price    float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
