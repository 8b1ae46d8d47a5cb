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

type CompleteAppointment struct {
	repo  domain.Repository
	gate  access.Gate
	audit audit.Sink
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	gate access.Gate,
	sink audit.Sink,
	now func() time.Time,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		gate:  gate,
		audit: sink,
		now:   now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole access.Role,
	appointmentID uint,
) (Result, error) {

	if !uc.gate.Can(actorRole, access.OpAppointmentComplete) {
		return Result{}, httperr.ErrPermission(string(access.OpAppointmentComplete))
	}

	ap, changed, err := uc.repo.Transition(ctx, appointmentID, func(ap *models.Appointment) (bool, error) {
		if domain.Status(ap.Status).IsTerminal() {
			return false, nil
		}
		if err := domain.Complete(ap, uc.now()); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return Result{}, err
	}

	if !changed {
		return Result{Appointment: ap, Changed: false}, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return Result{Appointment: ap, Changed: true}, nil
}
