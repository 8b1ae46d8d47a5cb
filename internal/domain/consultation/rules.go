package consultation

import (
	"fmt"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
)

// Cotas del costo de una consulta. Ambos extremos son excluyentes:
// se exige mayor a 5000 y menor a 200000.
const (
	CostFloor   = 5000
	CostCeiling = 200000
)

// Hora fija a la que se agenda el control de seguimiento.
const FollowUpHour = 10

func ValidateCost(cost float64) error {
	if cost <= CostFloor || cost >= CostCeiling {
		return httperr.ErrValidation(
			httperr.RuleCostOutOfRange,
			fmt.Sprintf("el costo debe ser mayor a $%d y menor a $%d (recibido: %.2f)",
				CostFloor, CostCeiling, cost),
		)
	}
	return nil
}

// ValidateFollowUp exige que la próxima cita no sea anterior a hoy.
// today debe venir truncado a medianoche en la zona de la clínica.
func ValidateFollowUp(followUp time.Time, today time.Time) error {
	if followUp.Before(today) {
		return httperr.ErrValidation(
			httperr.RuleFollowUpInPast,
			fmt.Sprintf("la próxima cita (%s) no puede ser en el pasado",
				followUp.Format("2006-01-02")),
		)
	}
	return nil
}

// FollowUpAt ubica el control a la hora fija del día indicado.
func FollowUpAt(date time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), FollowUpHour, 0, 0, 0, loc)
}
