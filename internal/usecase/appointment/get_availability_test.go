package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

func TestGetAvailabilityEmptyDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, santiago)

	slots, err := uc.Execute(context.Background(), 1, at(t, "2026-07-02 00:00"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 09:00 a 17:30 cada 30 minutos.
	if len(slots) != 18 {
		t.Fatalf("len(slots) = %d", len(slots))
	}
	if slots[0].Start != "09:00" {
		t.Fatalf("primer cupo = %s", slots[0].Start)
	}
	if slots[len(slots)-1].Start != "17:30" {
		t.Fatalf("último cupo = %s", slots[len(slots)-1].Start)
	}
}

func TestGetAvailabilityRespectsSeparation(t *testing.T) {
	repo := newFakeRepo()
	repo.addAppointment(models.Appointment{
		PetID:          1,
		VeterinarianID: 1,
		ScheduledAt:    at(t, "2026-07-02 10:15"),
		Status:         string(domain.StatusScheduled),
	})

	uc := NewGetAvailability(repo, santiago)

	slots, err := uc.Execute(context.Background(), 1, at(t, "2026-07-02 00:00"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range slots {
		if s.Start == "10:00" || s.Start == "10:30" {
			t.Errorf("cupo %s viola la separación con la cita de 10:15", s.Start)
		}
	}
}

func TestGetAvailabilityFullDay(t *testing.T) {
	repo := newFakeRepo()
	start := at(t, "2026-07-02 09:00")
	for i := 0; i < domain.DailyCapacity; i++ {
		repo.addAppointment(models.Appointment{
			PetID:          uint(100 + i),
			VeterinarianID: 1,
			ScheduledAt:    start.Add(time.Duration(i) * time.Hour),
			Status:         string(domain.StatusScheduled),
		})
	}

	uc := NewGetAvailability(repo, santiago)

	slots, err := uc.Execute(context.Background(), 1, at(t, "2026-07-02 00:00"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("día lleno: se esperaban 0 cupos, hay %d", len(slots))
	}
}

func TestGetAvailabilityIgnoresCancelled(t *testing.T) {
	repo := newFakeRepo()
	repo.addAppointment(models.Appointment{
		PetID:          1,
		VeterinarianID: 1,
		ScheduledAt:    at(t, "2026-07-02 10:00"),
		Status:         string(domain.StatusCancelled),
	})

	uc := NewGetAvailability(repo, santiago)

	slots, err := uc.Execute(context.Background(), 1, at(t, "2026-07-02 00:00"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	found := false
	for _, s := range slots {
		if s.Start == "10:00" {
			found = true
		}
	}
	if !found {
		t.Fatal("una cita cancelada no debe bloquear el cupo de las 10:00")
	}
}
