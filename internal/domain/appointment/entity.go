package appointment

import (
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

// Cancel y Complete son las únicas salidas del estado programado.
// Guardan el instante de la transición; los casos de uso deciden
// cuándo un estado terminal es un no-op y cuándo es un error.

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
