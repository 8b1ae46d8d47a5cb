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

// Result distingue una transición real de un no-op informativo
// (cancelar lo cancelado, completar lo completado).
type Result struct {
	Appointment *models.Appointment
	Changed     bool
}

type CancelAppointment struct {
	repo  domain.Repository
	gate  access.Gate
	audit audit.Sink
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	gate access.Gate,
	sink audit.Sink,
	now func() time.Time,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		gate:  gate,
		audit: sink,
		now:   now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole access.Role,
	appointmentID uint,
) (Result, error) {

	if !uc.gate.Can(actorRole, access.OpAppointmentCancel) {
		return Result{}, httperr.ErrPermission(string(access.OpAppointmentCancel))
	}

	// La guarda terminal y la escritura van juntas, con la fila
	// bloqueada: un complete concurrente no puede colarse entre medio.
	ap, changed, err := uc.repo.Transition(ctx, appointmentID, func(ap *models.Appointment) (bool, error) {
		// Cancelar es idempotente: en estado terminal no se toca nada.
		if domain.Status(ap.Status).IsTerminal() {
			return false, nil
		}
		if err := domain.Cancel(ap, uc.now()); err != nil {
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
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return Result{Appointment: ap, Changed: true}, nil
}
