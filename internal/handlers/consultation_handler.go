package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AustralVet/clinic-scheduler/internal/billing"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
	ucConsultation "github.com/AustralVet/clinic-scheduler/internal/usecase/consultation"
)

type ConsultationHandler struct {
	db       *gorm.DB
	register *ucConsultation.RegisterConsultation
	billing  *billing.Client // nil cuando el cobro online está apagado
	loc      *time.Location
}

func NewConsultationHandler(
	db *gorm.DB,
	register *ucConsultation.RegisterConsultation,
	billingClient *billing.Client,
	loc *time.Location,
) *ConsultationHandler {
	return &ConsultationHandler{
		db:       db,
		register: register,
		billing:  billingClient,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterConsultationRequest struct {
	Date        string  `json:"date" binding:"required"`
	Diagnosis   string  `json:"diagnosis" binding:"required"`
	Treatment   string  `json:"treatment"`
	Medications string  `json:"medications"`
	FollowUp    string  `json:"follow_up"`
	Cost        float64 `json:"cost" binding:"required"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *ConsultationHandler) Register(c *gin.Context) {
	userID, role := actor(c)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RegisterConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseDate(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha de consulta inválida.")
		return
	}

	var followUp *time.Time
	if req.FollowUp != "" {
		f, err := parseDate(h.loc, req.FollowUp)
		if err != nil {
			httperr.BadRequest(c, "invalid_follow_up", "Fecha de próxima cita inválida.")
			return
		}
		followUp = &f
	}

	res, err := h.register.Execute(c.Request.Context(), ucConsultation.RegisterConsultationInput{
		ActorID:       userID,
		ActorRole:     role,
		AppointmentID: uint(apID),
		Date:          date,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Medications:   req.Medications,
		FollowUp:      followUp,
		Cost:          req.Cost,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	if res.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{
			"notice":       "consultation_already_exists",
			"consultation": res.Consultation,
		})
		return
	}

	resp := gin.H{"consultation": res.Consultation}
	if res.FollowUp != nil {
		resp["follow_up_appointment"] = res.FollowUp
	}

	// Cobro online best-effort: ya todo quedó comprometido en la base.
	if h.billing != nil {
		if link, err := h.paymentLink(c.Request.Context(), res.Consultation); err == nil {
			resp["payment_link"] = link
		} else {
			log.Printf("mercadopago preference failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ConsultationHandler) paymentLink(ctx context.Context, cons *models.Consultation) (string, error) {
	var ap models.Appointment
	if err := h.db.WithContext(ctx).Preload("Pet").First(&ap, cons.AppointmentID).Error; err != nil {
		return "", err
	}
	return h.billing.ConsultationPreference(ctx, cons, ap.Pet.Name)
}

// ======================================================
// GET BY APPOINTMENT
// ======================================================

func (h *ConsultationHandler) GetByAppointment(c *gin.Context) {
	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var cons models.Consultation
	if err := h.db.WithContext(c.Request.Context()).
		Where("appointment_id = ?", apID).
		First(&cons).Error; err != nil {
		httperr.NotFound(c, "consultation_not_found", "La cita no tiene consulta registrada.")
		return
	}

	c.JSON(http.StatusOK, cons)
}
