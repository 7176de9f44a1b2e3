package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/calendar"
	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/httperr"
	"github.com/huellitas-app/petcare-api/internal/models"
	"github.com/huellitas-app/petcare-api/internal/session"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	nextID       uint
	appointments map[uint]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:       1,
		appointments: make(map[uint]*models.Appointment),
	}
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointmentForUser(ctx context.Context, id uint, email string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.UserEmail != email {
		return nil, errors.New("record not found")
	}

	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointmentsForUser(ctx context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserEmail == email {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeMirror struct {
	createCalls int
	updateCalls int
	deleteCalls int

	lastToken   string
	lastEvent   calendar.Event
	lastEventID string

	err error
}

func (m *fakeMirror) CreateEvent(ctx context.Context, token string, ev calendar.Event) (string, error) {
	m.createCalls++
	m.lastToken = token
	m.lastEvent = ev

	if m.err != nil {
		return "", m.err
	}
	return "evt_123", nil
}

func (m *fakeMirror) UpdateEvent(ctx context.Context, token string, eventID string, ev calendar.Event) error {
	m.updateCalls++
	m.lastToken = token
	m.lastEventID = eventID
	m.lastEvent = ev
	return m.err
}

func (m *fakeMirror) DeleteEvent(ctx context.Context, token string, eventID string) error {
	m.deleteCalls++
	m.lastToken = token
	m.lastEventID = eventID
	return m.err
}

var _ calendar.Mirror = (*fakeMirror)(nil)

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	// Logger nil: los eventos encolados no se consumen, pero Dispatch
	// nunca bloquea (cola con buffer y drop-on-full).
	return audit.NewSilentDispatcher()
}

func validInput() domain.Input {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return domain.Input{
		PetID:       7,
		PetName:     "Firulais",
		Description: "Servicio: Baño y corte",
		Start:       start,
		End:         start.Add(time.Hour),
	}
}

func sessionWithCalendar() session.Session {
	return session.Session{UserID: 1, Email: "ana@example.com", CalendarToken: "ya29.token"}
}

func sessionWithoutCalendar() session.Session {
	return session.Session{UserID: 1, Email: "ana@example.com"}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointmentWithCalendarToken(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	uc := NewCreateAppointment(repo, mirror, testDispatcher())

	ap, err := uc.Execute(context.Background(), sessionWithCalendar(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, mirror.createCalls)
	assert.Equal(t, "ya29.token", mirror.lastToken)
	assert.Equal(t, "Cita con Firulais", mirror.lastEvent.Summary)

	require.NotNil(t, ap.GoogleEventID)
	assert.Equal(t, "evt_123", *ap.GoogleEventID)
	assert.Equal(t, "ana@example.com", ap.UserEmail)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointmentWithoutCalendarToken(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	uc := NewCreateAppointment(repo, mirror, testDispatcher())

	ap, err := uc.Execute(context.Background(), sessionWithoutCalendar(), validInput())
	require.NoError(t, err)

	// Sin token no se toca el calendario, pero la cita se guarda igual
	assert.Equal(t, 0, mirror.createCalls)
	assert.Nil(t, ap.GoogleEventID)
}

func TestCreateAppointmentSurvivesMirrorFailure(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{err: errors.New("googleapi: 500")}
	uc := NewCreateAppointment(repo, mirror, testDispatcher())

	ap, err := uc.Execute(context.Background(), sessionWithCalendar(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, mirror.createCalls)
	assert.Nil(t, ap.GoogleEventID)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentRejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	uc := NewCreateAppointment(repo, mirror, testDispatcher())

	in := validInput()
	in.PetName = ""

	_, err := uc.Execute(context.Background(), sessionWithCalendar(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_pet_name"))

	// La validación corta antes de cualquier llamada de red o persistencia
	assert.Equal(t, 0, mirror.createCalls)
	assert.Empty(t, repo.appointments)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateAppointmentOverwritesFields(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)

	in := validInput()
	in.PetName = "Michi"
	in.Description = "Servicio: Solo baño"

	updateUC := NewUpdateAppointment(repo, mirror, testDispatcher())
	updated, err := updateUC.Execute(context.Background(), sess, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Michi", updated.PetName)
	assert.Equal(t, "Servicio: Solo baño", updated.Description)

	// El espejo se parcha con el mismo event id de la creación
	assert.Equal(t, 1, mirror.updateCalls)
	assert.Equal(t, "evt_123", mirror.lastEventID)
	assert.Equal(t, "Cita con Michi", mirror.lastEvent.Summary)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateAppointment(repo, &fakeMirror{}, testDispatcher())

	_, err := uc.Execute(context.Background(), sessionWithCalendar(), 99, validInput())
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointmentOfAnotherUser(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sessionWithCalendar(), validInput())
	require.NoError(t, err)

	other := session.Session{UserID: 2, Email: "otro@example.com"}

	updateUC := NewUpdateAppointment(repo, mirror, testDispatcher())
	_, err = updateUC.Execute(context.Background(), other, created.ID, validInput())
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointmentSkipsMirrorWithoutEventID(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithoutCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)
	require.Nil(t, created.GoogleEventID)

	// Aunque la edición traiga token, sin event id no hay qué parchar
	updateUC := NewUpdateAppointment(repo, mirror, testDispatcher())
	_, err = updateUC.Execute(context.Background(), sessionWithCalendar(), created.ID, validInput())
	require.NoError(t, err)

	assert.Equal(t, 0, mirror.updateCalls)
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteAppointmentRemovesStoreAndMirror(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)

	deleteUC := NewDeleteAppointment(repo, mirror, testDispatcher())
	require.NoError(t, deleteUC.Execute(context.Background(), sess, created.ID))

	assert.Empty(t, repo.appointments)
	assert.Equal(t, 1, mirror.deleteCalls)
	assert.Equal(t, "evt_123", mirror.lastEventID)
}

func TestDeleteAppointmentSkipsMirrorWithoutEventID(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithoutCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)

	deleteUC := NewDeleteAppointment(repo, mirror, testDispatcher())
	require.NoError(t, deleteUC.Execute(context.Background(), sessionWithCalendar(), created.ID))

	assert.Empty(t, repo.appointments)
	assert.Equal(t, 0, mirror.deleteCalls)
}

func TestDeleteAppointmentSurvivesMirrorFailure(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	created, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)

	mirror.err = errors.New("googleapi: 500")

	deleteUC := NewDeleteAppointment(repo, mirror, testDispatcher())
	require.NoError(t, deleteUC.Execute(context.Background(), sess, created.ID))

	assert.Empty(t, repo.appointments)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteAppointment(repo, &fakeMirror{}, testDispatcher())

	err := uc.Execute(context.Background(), sessionWithCalendar(), 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ======================================================
// LIST
// ======================================================

func TestListAppointmentsForUserMapsDTO(t *testing.T) {
	repo := newFakeRepo()
	mirror := &fakeMirror{}
	sess := sessionWithCalendar()

	createUC := NewCreateAppointment(repo, mirror, testDispatcher())
	_, err := createUC.Execute(context.Background(), sess, validInput())
	require.NoError(t, err)

	other := session.Session{UserID: 2, Email: "otro@example.com"}
	_, err = createUC.Execute(context.Background(), other, validInput())
	require.NoError(t, err)

	listUC := NewListAppointmentsForUser(repo)
	got, err := listUC.Execute(context.Background(), sess)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Firulais", got[0].PetName)
	assert.Equal(t, "Baño y corte", got[0].ServiceTitle)
	assert.Equal(t, "Servicio: Baño y corte", got[0].Description)
}

func TestListAppointmentsForUserEmpty(t *testing.T) {
	listUC := NewListAppointmentsForUser(newFakeRepo())

	got, err := listUC.Execute(context.Background(), sessionWithCalendar())
	require.NoError(t, err)
	assert.Empty(t, got)
}
