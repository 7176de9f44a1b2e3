package calendar

import (
	"context"
	"time"
)

// Event es lo mínimo que la agenda espeja hacia el calendario externo.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Mirror es el espejo best-effort de citas en un calendario externo.
// La implementación real habla con Google Calendar; los tests usan fakes.
// Cada operación recibe el access token del usuario dueño del calendario.
type Mirror interface {
	CreateEvent(ctx context.Context, token string, ev Event) (string, error)
	UpdateEvent(ctx context.Context, token string, eventID string, ev Event) error
	DeleteEvent(ctx context.Context, token string, eventID string) error
}
