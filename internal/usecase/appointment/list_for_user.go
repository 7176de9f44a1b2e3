package appointment

import (
	"context"

	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/dto"
	"github.com/huellitas-app/petcare-api/internal/session"
)

type ListAppointmentsForUser struct {
	repo domain.Repository
}

func NewListAppointmentsForUser(
	repo domain.Repository,
) *ListAppointmentsForUser {
	return &ListAppointmentsForUser{
		repo: repo,
	}
}

// Execute devuelve todas las citas del email de la sesión, sin paginar,
// ordenadas por inicio ascendente (así "la próxima cita" es la primera).
func (uc *ListAppointmentsForUser) Execute(
	ctx context.Context,
	sess session.Session,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentDTO{
			ID:            ap.ID,
			PetID:         ap.PetID,
			PetName:       ap.PetName,
			ServiceTitle:  domain.ServiceTitle(ap.Description),
			Description:   ap.Description,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			GoogleEventID: ap.GoogleEventID,
		})
	}

	return out, nil
}
