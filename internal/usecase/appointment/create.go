package appointment

import (
	"context"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/access"
	"github.com/AustralVet/clinic-scheduler/internal/audit"
	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ActorID   uint
	ActorRole access.Role

	PetID          uint
	VeterinarianID uint
	ScheduledAt    time.Time
	Reason         string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	gate  access.Gate
	rules domain.Rules
	audit audit.Sink
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	gate access.Gate,
	rules domain.Rules,
	sink audit.Sink,
	now func() time.Time,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		gate:  gate,
		rules: rules,
		audit: sink,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !uc.gate.Can(in.ActorRole, access.OpAppointmentCreate) {
		return nil, httperr.ErrPermission(string(access.OpAppointmentCreate))
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetVeterinarian(ctx, in.VeterinarianID); err != nil {
		return nil, err
	}

	now := uc.now()

	cand := domain.Candidate{
		Pet:         pet,
		VetID:       in.VeterinarianID,
		ScheduledAt: in.ScheduledAt,
	}

	// Reglas 1–2 antes de abrir la transacción; 3–5 adentro, contra
	// el snapshot bloqueado, para cerrar la ventana de carrera.
	if err := uc.rules.CheckBasics(cand, now); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PetID:          in.PetID,
		VeterinarianID: in.VeterinarianID,
		ScheduledAt:    in.ScheduledAt,
		Status:         string(domain.InitialStatus()),
		Reason:         in.Reason,
		Notes:          in.Notes,
	}

	if err := uc.repo.Book(ctx, ap, func(snap domain.Snapshot) error {
		return uc.rules.CheckConflicts(cand, snap)
	}); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
