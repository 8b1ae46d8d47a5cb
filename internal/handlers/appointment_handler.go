package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/AustralVet/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	reschedule   *ucAppointment.RescheduleAppointment
	cancel       *ucAppointment.CancelAppointment
	complete     *ucAppointment.CompleteAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
	availability *ucAppointment.GetAvailability
	loc          *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	availability *ucAppointment.GetAvailability,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		reschedule:   reschedule,
		cancel:       cancel,
		complete:     complete,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		availability: availability,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PetID          uint   `json:"pet_id" binding:"required"`
	VeterinarianID uint   `json:"veterinarian_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	Notes          string `json:"notes"`
}

func actor(c *gin.Context) (uint, access.Role) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := access.ParseRole(c.MustGet(middleware.ContextUserRole).(string))
	return userID, role
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, role := actor(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	scheduledAt, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ActorID:        userID,
		ActorRole:      role,
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		ScheduledAt:    scheduledAt,
		Reason:         req.Reason,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID, role := actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	scheduledAt, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		ActorID:        userID,
		ActorRole:      role,
		AppointmentID:  uint(id),
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		ScheduledAt:    scheduledAt,
		Reason:         req.Reason,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, role := actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), userID, role, uint(id))
	if err != nil {
		httperr.From(c, err)
		return
	}

	if !res.Changed {
		c.JSON(http.StatusOK, gin.H{
			"notice":      "already_finalized",
			"appointment": res.Appointment,
		})
		return
	}

	c.JSON(http.StatusOK, res.Appointment)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID, role := actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res, err := h.complete.Execute(c.Request.Context(), userID, role, uint(id))
	if err != nil {
		httperr.From(c, err)
		return
	}

	if !res.Changed {
		c.JSON(http.StatusOK, gin.H{
			"notice":      "already_finalized",
			"appointment": res.Appointment,
		})
		return
	}

	c.JSON(http.StatusOK, res.Appointment)
}

// ======================================================
// LISTADOS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	vetID, err := strconv.ParseUint(c.Query("vet_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "missing_vet", "Veterinario obligatorio.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), uint(vetID), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	vetID, err := strconv.ParseUint(c.Query("vet_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "missing_vet", "Veterinario obligatorio.")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), uint(vetID), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	vetID, err := strconv.ParseUint(c.Query("vet_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "missing_vet", "Veterinario obligatorio.")
		return
	}

	date, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(vetID), date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Error al calcular disponibilidad.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
