package appointment

import "github.com/AustralVet/clinic-scheduler/internal/httperr"

// ===============================
// Estado de la cita
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

// IsTerminal: completed y cancelled no admiten más transiciones.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Guardas de transición
// ===============================

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrValidation(
			httperr.RuleInvalidStateTransition,
			"solo una cita programada puede cancelarse",
		)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrValidation(
			httperr.RuleInvalidStateTransition,
			"solo una cita programada puede completarse",
		)
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrValidation(
			httperr.RuleInvalidStateTransition,
			"solo una cita programada puede reagendarse",
		)
	}
	return nil
}
