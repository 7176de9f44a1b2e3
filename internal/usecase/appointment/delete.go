package appointment

import (
	"context"
	"log"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/calendar"
	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/httperr"
	"github.com/huellitas-app/petcare-api/internal/session"
)

type DeleteAppointment struct {
	repo   domain.Repository
	mirror calendar.Mirror
	audit  *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	mirror calendar.Mirror,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		mirror: mirror,
		audit:  audit,
	}
}

// Execute borra la cita del store y después intenta borrar el espejo.
// El borrado del store es el que cuenta; si el proceso muere entre los
// dos pasos el evento queda huérfano en el calendario.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, sess.Email)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	if sess.HasCalendar() && ap.GoogleEventID != nil {
		if err := uc.mirror.DeleteEvent(ctx, sess.CalendarToken, *ap.GoogleEventID); err != nil {
			log.Printf("calendar mirror delete failed: %v", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return nil
}
