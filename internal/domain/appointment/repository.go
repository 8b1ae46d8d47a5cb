package appointment

import (
	"context"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Entidades referenciadas --------
	GetPet(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	GetVeterinarian(
		ctx context.Context,
		id uint,
	) (*models.Veterinarian, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Agendamiento --------

	// Book inserta (ID == 0) o reagenda la cita en UNA transacción:
	// bloquea el snapshot de conflictos (FOR UPDATE), ejecuta check
	// sobre él y recién entonces escribe. Si check falla no se
	// persiste nada.
	Book(
		ctx context.Context,
		ap *models.Appointment,
		check func(Snapshot) error,
	) error

	// Transition carga la cita con FOR UPDATE, corre apply sobre la
	// fila bloqueada y persiste solo si apply devuelve true, todo en
	// una transacción. Cancelar y completar deciden contra el estado
	// comprometido, nunca contra una lectura vieja.
	Transition(
		ctx context.Context,
		id uint,
		apply func(ap *models.Appointment) (bool, error),
	) (*models.Appointment, bool, error)

	// -------- Listados --------
	ListForPeriod(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// CountScheduledForVet soporta la guarda de desactivación del
	// veterinario: con citas programadas no se puede desactivar.
	CountScheduledForVet(
		ctx context.Context,
		vetID uint,
	) (int64, error)
}
