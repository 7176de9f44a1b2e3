package appointment

import (
	"context"
	"log"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/calendar"
	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/httperr"
	"github.com/huellitas-app/petcare-api/internal/models"
	"github.com/huellitas-app/petcare-api/internal/session"
)

type UpdateAppointment struct {
	repo   domain.Repository
	mirror calendar.Mirror
	audit  *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	mirror calendar.Mirror,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		mirror: mirror,
		audit:  audit,
	}
}

// Execute sobreescribe la cita con los campos completos re-enviados por
// la edición. Sin chequeo optimista: dos ediciones concurrentes terminan
// en last-write-wins. El PATCH al calendario es best-effort.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID uint,
	in domain.Input,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, sess.Email)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.PetID = in.PetID
	ap.PetName = in.PetName
	ap.Description = in.Description
	ap.StartTime = in.Start
	ap.EndTime = in.End

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.mirrorUpdate(ctx, sess, ap, in)

	uc.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

func (uc *UpdateAppointment) mirrorUpdate(
	ctx context.Context,
	sess session.Session,
	ap *models.Appointment,
	in domain.Input,
) {

	if !sess.HasCalendar() || ap.GoogleEventID == nil {
		return
	}

	err := uc.mirror.UpdateEvent(ctx, sess.CalendarToken, *ap.GoogleEventID, calendar.Event{
		Summary:     domain.EventSummary(in.PetName),
		Description: in.Description,
		Start:       in.Start,
		End:         in.End,
	})
	if err != nil {
		log.Printf("calendar mirror update failed: %v", err)
	}
}
