package consultation

import (
	"context"

	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

type Repository interface {
	// GetByAppointment devuelve (nil, nil) cuando la cita aún no tiene
	// consulta registrada.
	GetByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Consultation, error)

	// Register persiste en UNA transacción: la consulta, la cita ya
	// mutada a completada y, si corresponde, el control de seguimiento.
	// followUpCheck se invoca únicamente cuando followUp no es nil,
	// contra el snapshot bloqueado del control; su resultado lo decide
	// el caso de uso (los controles son reservas privilegiadas).
	// Cualquier fallo revierte todo.
	Register(
		ctx context.Context,
		cons *models.Consultation,
		ap *models.Appointment,
		followUp *models.Appointment,
		followUpCheck func(domain.Snapshot) error,
	) error
}
