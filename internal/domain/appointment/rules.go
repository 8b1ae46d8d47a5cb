package appointment

import (
	"fmt"
	"math"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

// ======================================================
// REGLAS DE AGENDA
// ======================================================

const (
	// Máximo de citas programadas por veterinario por día calendario.
	DailyCapacity = 8

	// Separación mínima entre dos citas del mismo veterinario.
	MinSeparation = 30 * time.Minute
)

// Candidate es la tupla (mascota, veterinario, horario) a validar.
// ExcludeID excluye a la cita que se está editando de los conflictos.
type Candidate struct {
	Pet         *models.Pet
	VetID       uint
	ScheduledAt time.Time
	ExcludeID   uint
}

// Snapshot es el estado comprometido contra el que se evalúan las
// reglas 3–5. Debe cargarse de una sola lectura (misma transacción)
// para que las tres reglas sean consistentes entre sí.
type Snapshot struct {
	// Citas programadas del veterinario el mismo día calendario,
	// sin contar la cita editada.
	SameDay []models.Appointment

	// Citas programadas de la misma mascota con el mismo veterinario,
	// cualquier fecha, sin contar la cita editada.
	OpenWithVet []models.Appointment
}

type Rules struct {
	Loc *time.Location
}

func NewRules(loc *time.Location) Rules {
	return Rules{Loc: loc}
}

// CheckBasics evalúa las reglas 1–2 (pasado, mascota inactiva).
// No muta estado: los casos de uso deciden qué hacer.
func (r Rules) CheckBasics(cand Candidate, now time.Time) error {
	// 1. Una cita programada no puede quedar en el pasado.
	if cand.ScheduledAt.Before(now) {
		return httperr.ErrValidation(
			httperr.RulePastDate,
			fmt.Sprintf("no se puede agendar una cita en el pasado (%s)",
				cand.ScheduledAt.In(r.Loc).Format("2006-01-02 15:04")),
		)
	}

	// 2. La mascota debe estar activa.
	if cand.Pet != nil && !cand.Pet.Active {
		return httperr.ErrValidation(
			httperr.RuleInactivePet,
			fmt.Sprintf("la mascota %s está inactiva", cand.Pet.Name),
		)
	}

	return nil
}

// CheckAll corre las cinco reglas en orden contra un snapshot ya cargado.
func (r Rules) CheckAll(cand Candidate, now time.Time, snap Snapshot) error {
	if err := r.CheckBasics(cand, now); err != nil {
		return err
	}
	return r.CheckConflicts(cand, snap)
}

// CheckConflicts evalúa las reglas 3–5 (capacidad, separación,
// exclusividad mascota/veterinario) contra el snapshot.
func (r Rules) CheckConflicts(cand Candidate, snap Snapshot) error {
	// 3. Capacidad diaria.
	if len(snap.SameDay) >= DailyCapacity {
		return httperr.ErrValidation(
			httperr.RuleDailyCapacityExceeded,
			fmt.Sprintf("el veterinario ya tiene %d citas programadas ese día", len(snap.SameDay)),
		)
	}

	// 4. Separación mínima, diferencia absoluta.
	for _, other := range snap.SameDay {
		diff := time.Duration(math.Abs(float64(other.ScheduledAt.Sub(cand.ScheduledAt))))
		if diff < MinSeparation {
			return httperr.ErrValidation(
				httperr.RuleMinimumSeparationViolated,
				fmt.Sprintf("existe otra cita a las %s; debe haber al menos %d minutos de separación",
					other.ScheduledAt.In(r.Loc).Format("15:04"),
					int(MinSeparation.Minutes())),
			)
		}
	}

	// 5. Una sola cita abierta por (mascota, veterinario).
	if len(snap.OpenWithVet) > 0 {
		return httperr.ErrValidation(
			httperr.RuleDuplicateActiveEngagement,
			"la mascota ya tiene una cita programada con este veterinario",
		)
	}

	return nil
}
