package appointment

import (
	"context"
	"time"

	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/timezone"
)

// Horario de atención de la clínica para la generación de cupos.
const (
	openHour  = 9
	closeHour = 18
)

type TimeSlot struct {
	Start string `json:"start"`
}

// GetAvailability lista los horarios del día que todavía aceptan una
// cita para el veterinario: respetando la separación mínima y la
// capacidad diaria.
type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]TimeSlot, error) {

	dayStart, dayEnd := timezone.DayBounds(date, uc.loc)

	appointments, err := uc.repo.ListForPeriod(ctx, vetID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	scheduled := make([]time.Time, 0, len(appointments))
	for _, ap := range appointments {
		if domain.Status(ap.Status) == domain.StatusScheduled {
			scheduled = append(scheduled, ap.ScheduledAt)
		}
	}

	slots := []TimeSlot{}
	if len(scheduled) >= domain.DailyCapacity {
		return slots, nil
	}

	open := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), openHour, 0, 0, 0, uc.loc)
	close := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), closeHour, 0, 0, 0, uc.loc)

	for cur := open; cur.Before(close); cur = cur.Add(domain.MinSeparation) {
		conflict := false
		for _, at := range scheduled {
			diff := cur.Sub(at)
			if diff < 0 {
				diff = -diff
			}
			if diff < domain.MinSeparation {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{Start: cur.Format("15:04")})
		}
	}

	return slots, nil
}
