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

type RescheduleAppointmentInput struct {
	ActorID   uint
	ActorRole access.Role

	AppointmentID  uint
	PetID          uint
	VeterinarianID uint
	ScheduledAt    time.Time
	Reason         string
	Notes          string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	gate  access.Gate
	rules domain.Rules
	audit audit.Sink
	now   func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	gate access.Gate,
	rules domain.Rules,
	sink audit.Sink,
	now func() time.Time,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		gate:  gate,
		rules: rules,
		audit: sink,
		now:   now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if !uc.gate.Can(in.ActorRole, access.OpAppointmentReschedule) {
		return nil, httperr.ErrPermission(string(access.OpAppointmentReschedule))
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetVeterinarian(ctx, in.VeterinarianID); err != nil {
		return nil, err
	}

	now := uc.now()

	// La cita editada se excluye a sí misma de los conflictos.
	cand := domain.Candidate{
		Pet:         pet,
		VetID:       in.VeterinarianID,
		ScheduledAt: in.ScheduledAt,
		ExcludeID:   ap.ID,
	}

	if err := uc.rules.CheckBasics(cand, now); err != nil {
		return nil, err
	}

	ap.PetID = in.PetID
	ap.VeterinarianID = in.VeterinarianID
	ap.ScheduledAt = in.ScheduledAt
	if in.Reason != "" {
		ap.Reason = in.Reason
	}
	if in.Notes != "" {
		ap.Notes = in.Notes
	}

	if err := uc.repo.Book(ctx, ap, func(snap domain.Snapshot) error {
		return uc.rules.CheckConflicts(cand, snap)
	}); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
