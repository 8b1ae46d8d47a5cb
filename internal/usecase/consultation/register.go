package consultation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/audit"
	apdomain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	domain "github.com/AustralVet/clinic-scheduler/internal/domain/consultation"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type RegisterConsultationInput struct {
	ActorID   uint
	ActorRole access.Role

	AppointmentID uint
	Date          time.Time
	Diagnosis     string
	Treatment     string
	Medications   string
	FollowUp      *time.Time
	Cost          float64
}

type RegisterResult struct {
	Consultation *models.Consultation
	FollowUp     *models.Appointment

	// AlreadyExists indica que la cita ya tenía consulta: se devuelve
	// la existente sin escribir nada.
	AlreadyExists bool
}

// ======================================================
// USE CASE
// ======================================================

type RegisterConsultation struct {
	consRepo domain.Repository
	apRepo   apdomain.Repository
	gate     access.Gate
	rules    apdomain.Rules
	loc      *time.Location
	audit    audit.Sink
	now      func() time.Time
}

func NewRegisterConsultation(
	consRepo domain.Repository,
	apRepo apdomain.Repository,
	gate access.Gate,
	rules apdomain.Rules,
	loc *time.Location,
	sink audit.Sink,
	now func() time.Time,
) *RegisterConsultation {
	return &RegisterConsultation{
		consRepo: consRepo,
		apRepo:   apRepo,
		gate:     gate,
		rules:    rules,
		loc:      loc,
		audit:    sink,
		now:      now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterConsultation) Execute(
	ctx context.Context,
	in RegisterConsultationInput,
) (RegisterResult, error) {

	if !uc.gate.Can(in.ActorRole, access.OpConsultationRegister) {
		return RegisterResult{}, httperr.ErrPermission(string(access.OpConsultationRegister))
	}

	ap, err := uc.apRepo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return RegisterResult{}, err
	}

	// Cita con consulta previa: señal informativa, cero escrituras.
	existing, err := uc.consRepo.GetByAppointment(ctx, in.AppointmentID)
	if err != nil {
		return RegisterResult{}, err
	}
	if existing != nil {
		return RegisterResult{Consultation: existing, AlreadyExists: true}, nil
	}

	if apdomain.Status(ap.Status) == apdomain.StatusCancelled {
		return RegisterResult{}, httperr.ErrValidation(
			httperr.RuleInvalidStateTransition,
			"no se puede registrar una consulta sobre una cita cancelada",
		)
	}

	if err := domain.ValidateCost(in.Cost); err != nil {
		return RegisterResult{}, err
	}

	now := uc.now()

	var followUp *models.Appointment
	if in.FollowUp != nil {
		today := time.Date(now.In(uc.loc).Year(), now.In(uc.loc).Month(), now.In(uc.loc).Day(), 0, 0, 0, 0, uc.loc)
		if err := domain.ValidateFollowUp(*in.FollowUp, today); err != nil {
			return RegisterResult{}, err
		}

		followUp = &models.Appointment{
			PetID:          ap.PetID,
			VeterinarianID: ap.VeterinarianID,
			ScheduledAt:    domain.FollowUpAt(*in.FollowUp, uc.loc),
			Status:         string(apdomain.InitialStatus()),
			Reason:         fmt.Sprintf("Control: %s", in.Diagnosis),
			Notes:          fmt.Sprintf("Seguimiento de consulta del %s", in.Date.Format("2006-01-02")),
		}
	}

	// La cita dueña pasa a completada junto con la consulta; si ya
	// estaba completada se respeta (solo cancelada es ilegal).
	if apdomain.Status(ap.Status) == apdomain.StatusScheduled {
		if err := apdomain.Complete(ap, now); err != nil {
			return RegisterResult{}, err
		}
	}

	cons := &models.Consultation{
		AppointmentID: ap.ID,
		Date:          in.Date,
		Diagnosis:     in.Diagnosis,
		Treatment:     in.Treatment,
		Medications:   in.Medications,
		FollowUp:      in.FollowUp,
		Cost:          in.Cost,
	}

	// Todo en una transacción: consulta, cierre de la cita y control.
	// El control es una reserva privilegiada: pasa por el validador
	// completo (un control de hoy después de las 10:00 ya nace en el
	// pasado) pero una falla solo se advierte, no bloquea.
	var followUpWarning error
	err = uc.consRepo.Register(ctx, cons, ap, followUp, func(snap apdomain.Snapshot) error {
		if followUp == nil {
			return nil
		}
		cand := apdomain.Candidate{
			VetID:       followUp.VeterinarianID,
			ScheduledAt: followUp.ScheduledAt,
		}
		if err := uc.rules.CheckAll(cand, now, snap); err != nil {
			followUpWarning = err
		}
		return nil
	})
	if err != nil {
		return RegisterResult{}, err
	}

	if followUpWarning != nil {
		log.Printf("follow-up booking bypassed scheduling rules: %v", followUpWarning)
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "follow_up_rules_bypassed",
			Entity:   "appointment",
			EntityID: apID(followUp),
			Metadata: map[string]any{"reason": followUpWarning.Error()},
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "consultation_registered",
		Entity:   "consultation",
		EntityID: &cons.ID,
	})

	if followUp != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "follow_up_created",
			Entity:   "appointment",
			EntityID: &followUp.ID,
		})
	}

	return RegisterResult{Consultation: cons, FollowUp: followUp}, nil
}

func apID(ap *models.Appointment) *uint {
	if ap == nil {
		return nil
	}
	return &ap.ID
}
