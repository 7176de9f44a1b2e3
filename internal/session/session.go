package session

import (
	"github.com/gin-gonic/gin"

	"github.com/huellitas-app/petcare-api/internal/middleware"
)

// Header con el access token de Google Calendar del usuario.
// Es opcional: sin él la cita se guarda igual, solo que sin espejo.
const CalendarTokenHeader = "X-Calendar-Token"

// Session es el contexto explícito de usuario que viaja hacia los
// casos de uso, en lugar de releer estado compartido en cada pantalla.
type Session struct {
	UserID        uint
	Email         string
	CalendarToken string
}

func FromGin(c *gin.Context) Session {
	return Session{
		UserID:        c.MustGet(middleware.ContextUserID).(uint),
		Email:         c.MustGet(middleware.ContextUserEmail).(string),
		CalendarToken: c.GetHeader(CalendarTokenHeader),
	}
}

// HasCalendar indica si esta sesión puede espejar eventos en el calendario.
func (s Session) HasCalendar() bool {
	return s.CalendarToken != ""
}
