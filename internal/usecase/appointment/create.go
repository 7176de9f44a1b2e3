package appointment

import (
	"context"
	"log"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/calendar"
	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/models"
	"github.com/huellitas-app/petcare-api/internal/session"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	mirror calendar.Mirror
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	mirror calendar.Mirror,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		mirror: mirror,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute guarda la cita y, best-effort, su espejo en el calendario.
// El store manda: una falla del calendario jamás bloquea la cita.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	in domain.Input,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Espejo en el calendario (solo con token)
	// --------------------------------------------------
	eventID := uc.mirrorCreate(ctx, sess, in)

	// --------------------------------------------------
	// 2. Persistencia (fuente de verdad)
	// --------------------------------------------------
	// Si este insert falla después de un espejo exitoso queda un evento
	// huérfano en el calendario; no hay rollback ni job de reconciliación.
	ap := &models.Appointment{
		PetID:         in.PetID,
		PetName:       in.PetName,
		Description:   in.Description,
		StartTime:     in.Start,
		EndTime:       in.End,
		UserEmail:     sess.Email,
		GoogleEventID: eventID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &sess.UserID,
		UserEmail: sess.Email,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

// mirrorCreate devuelve nil si no hay token o si el calendario falló.
func (uc *CreateAppointment) mirrorCreate(
	ctx context.Context,
	sess session.Session,
	in domain.Input,
) *string {

	if !sess.HasCalendar() {
		return nil
	}

	id, err := uc.mirror.CreateEvent(ctx, sess.CalendarToken, calendar.Event{
		Summary:     domain.EventSummary(in.PetName),
		Description: in.Description,
		Start:       in.Start,
		End:         in.End,
	})
	if err != nil {
		log.Printf("calendar mirror create failed: %v", err)
		return nil
	}

	return &id
}
