package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PetID/PetName vienen del cliente; no se validan contra la tabla pets
	PetID   uint   `json:"pet_id"`
	PetName string `gorm:"size:100;not null" json:"pet_name"`

	// Formato "Servicio: <titulo>"
	Description string `gorm:"size:255" json:"description"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Correlación con el dueño; la app consulta "mis citas" por este campo
	UserEmail string `gorm:"size:100;index" json:"user_email"`

	// Evento espejo en Google Calendar; nil cuando no se pudo (o no se quiso) crear
	GoogleEventID *string `gorm:"size:255" json:"google_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
