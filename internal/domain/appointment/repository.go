package appointment

import (
	"context"

	"github.com/huellitas-app/petcare-api/internal/models"
)

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userEmail string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	ListAppointmentsForUser(
		ctx context.Context,
		userEmail string,
	) ([]models.Appointment, error)
}
