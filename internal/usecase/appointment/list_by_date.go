package appointment

import (
	"context"
	"time"

	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/dto"
	"github.com/AustralVet/clinic-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start, end := timezone.DayBounds(date, uc.loc)

	appointments, err := uc.repo.ListForPeriod(ctx, vetID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			Status:      ap.Status,
			PetName:     ap.Pet.Name,
			VetName:     ap.Veterinarian.FirstName + " " + ap.Veterinarian.LastName,
			Reason:      ap.Reason,
		})
	}

	return out, nil
}
