package dto

import "time"

type AppointmentDTO struct {
	ID            uint      `json:"id"`
	PetID         uint      `json:"pet_id"`
	PetName       string    `json:"pet_name"`
	ServiceTitle  string    `json:"service_title"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	GoogleEventID *string   `json:"google_event_id"`
}
