package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Zona horaria fija de los eventos espejados, igual que en la app móvil.
const EventTimeZone = "America/Mexico_City"

const primaryCalendarID = "primary"

// GoogleMirror espeja citas en el calendario "primary" del usuario.
type GoogleMirror struct {
	// endpoint sobreescribe la base de la API (tests)
	endpoint string
}

func NewGoogleMirror() *GoogleMirror {
	return &GoogleMirror{}
}

func NewGoogleMirrorWithEndpoint(endpoint string) *GoogleMirror {
	return &GoogleMirror{endpoint: endpoint}
}

// service arma un cliente autorizado con el access token del usuario.
// El token viene por request, así que el servicio se construye por llamada.
func (m *GoogleMirror) service(ctx context.Context, token string) (*calendarapi.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})

	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, src)),
	}
	if m.endpoint != "" {
		opts = append(opts, option.WithEndpoint(m.endpoint))
	}

	return calendarapi.NewService(ctx, opts...)
}

func toGoogleEvent(ev Event) *calendarapi.Event {
	return &calendarapi.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendarapi.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: EventTimeZone,
		},
		End: &calendarapi.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: EventTimeZone,
		},
	}
}

func (m *GoogleMirror) CreateEvent(ctx context.Context, token string, ev Event) (string, error) {
	srv, err := m.service(ctx, token)
	if err != nil {
		return "", err
	}

	created, err := srv.Events.Insert(primaryCalendarID, toGoogleEvent(ev)).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return created.Id, nil
}

func (m *GoogleMirror) UpdateEvent(ctx context.Context, token string, eventID string, ev Event) error {
	srv, err := m.service(ctx, token)
	if err != nil {
		return err
	}

	_, err = srv.Events.Patch(primaryCalendarID, eventID, toGoogleEvent(ev)).Context(ctx).Do()
	return err
}

func (m *GoogleMirror) DeleteEvent(ctx context.Context, token string, eventID string) error {
	srv, err := m.service(ctx, token)
	if err != nil {
		return err
	}

	return srv.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do()
}

var _ Mirror = (*GoogleMirror)(nil)
