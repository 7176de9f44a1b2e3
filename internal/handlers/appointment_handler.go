package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/huellitas-app/petcare-api/internal/domain/appointment"
	"github.com/huellitas-app/petcare-api/internal/httperr"
	"github.com/huellitas-app/petcare-api/internal/httpresp"
	"github.com/huellitas-app/petcare-api/internal/session"
	ucAppointment "github.com/huellitas-app/petcare-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointmentsForUser
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointmentsForUser,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest sirve para crear y para editar: la edición
// re-envía la cita completa, no un parche parcial.
type AppointmentRequest struct {
	PetID        uint      `json:"pet_id"`
	PetName      string    `json:"pet_name" binding:"required"`
	ServiceTitle string    `json:"service_title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}

func (req AppointmentRequest) toInput() domain.Input {
	description := req.Description
	if req.ServiceTitle != "" {
		description = domain.ServiceLabel(req.ServiceTitle)
	}

	return domain.Input{
		PetID:       req.PetID,
		PetName:     req.PetName,
		Description: description,
		Start:       req.StartTime,
		End:         req.EndTime,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	sess := session.FromGin(c)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), sess, req.toInput())
	if err != nil {
		writeAppointmentError(c, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	sess := session.FromGin(c)

	appointments, err := h.listUC.Execute(c.Request.Context(), sess)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	sess := session.FromGin(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), sess, id, req.toInput())
	if err != nil {
		writeAppointmentError(c, err, "failed_to_update_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	sess := session.FromGin(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), sess, id); err != nil {
		writeAppointmentError(c, err, "failed_to_delete_appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// SLOTS
// ======================================================

// Slots devuelve los horarios fijos de la pantalla de agendado.
func (h *AppointmentHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": domain.Slots()})
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func writeAppointmentError(c *gin.Context, err error, fallbackCode string) {
	if httperr.IsBusiness(err, "appointment_not_found") {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, "Datos inválidos.")
		return
	}

	httperr.Internal(c, fallbackCode, "Error al procesar la cita.")
}
