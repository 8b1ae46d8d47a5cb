package appointment

import (
	"testing"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

var santiago, _ = time.LoadLocation("America/Santiago")

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, santiago)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func scheduledAt(ts time.Time) models.Appointment {
	return models.Appointment{
		ScheduledAt: ts,
		Status:      string(StatusScheduled),
	}
}

func TestCheckBasicsPastDate(t *testing.T) {
	rules := NewRules(santiago)
	now := at(t, "2026-07-01 12:00")

	cand := Candidate{
		Pet:         &models.Pet{Name: "Kira", Active: true},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-01 11:59"),
	}

	err := rules.CheckBasics(cand, now)
	if !httperr.IsRule(err, httperr.RulePastDate) {
		t.Fatalf("expected past_date, got %v", err)
	}
}

func TestCheckBasicsInactivePet(t *testing.T) {
	rules := NewRules(santiago)
	now := at(t, "2026-07-01 12:00")

	cand := Candidate{
		Pet:         &models.Pet{Name: "Rocky", Active: false},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-02 10:00"),
	}

	err := rules.CheckBasics(cand, now)
	if !httperr.IsRule(err, httperr.RuleInactivePet) {
		t.Fatalf("expected inactive_pet, got %v", err)
	}
}

func TestCheckBasicsOrderPastDateBeforeInactivePet(t *testing.T) {
	rules := NewRules(santiago)
	now := at(t, "2026-07-01 12:00")

	// Las dos reglas fallan a la vez: gana la primera.
	cand := Candidate{
		Pet:         &models.Pet{Name: "Rocky", Active: false},
		VetID:       1,
		ScheduledAt: at(t, "2026-06-30 10:00"),
	}

	err := rules.CheckBasics(cand, now)
	if !httperr.IsRule(err, httperr.RulePastDate) {
		t.Fatalf("expected past_date first, got %v", err)
	}
}

func TestCheckConflictsDailyCapacity(t *testing.T) {
	rules := NewRules(santiago)

	// Ocho citas de 09:00 a 12:30 cada 30 minutos: día lleno.
	var snap Snapshot
	start := at(t, "2026-07-02 09:00")
	for i := 0; i < DailyCapacity; i++ {
		snap.SameDay = append(snap.SameDay, scheduledAt(start.Add(time.Duration(i)*30*time.Minute)))
	}

	cand := Candidate{
		Pet:         &models.Pet{Name: "Kira", Active: true},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-02 13:00"),
	}

	err := rules.CheckConflicts(cand, snap)
	if !httperr.IsRule(err, httperr.RuleDailyCapacityExceeded) {
		t.Fatalf("expected daily_capacity_exceeded, got %v", err)
	}
}

func TestCheckConflictsMinimumSeparation(t *testing.T) {
	rules := NewRules(santiago)

	snap := Snapshot{
		SameDay: []models.Appointment{scheduledAt(at(t, "2026-07-02 10:00"))},
	}

	cases := []struct {
		when string
		want bool // true = rechazada
	}{
		{"2026-07-02 10:20", true},  // 20 min después
		{"2026-07-02 09:45", true},  // 15 min antes
		{"2026-07-02 10:29", true},  // 29 min: justo bajo el límite
		{"2026-07-02 10:30", false}, // exactamente 30 min cumple
		{"2026-07-02 10:31", false},
		{"2026-07-02 09:30", false},
	}

	for _, tc := range cases {
		cand := Candidate{
			Pet:         &models.Pet{Name: "Kira", Active: true},
			VetID:       1,
			ScheduledAt: at(t, tc.when),
		}

		err := rules.CheckConflicts(cand, snap)
		got := httperr.IsRule(err, httperr.RuleMinimumSeparationViolated)
		if got != tc.want {
			t.Errorf("%s: rechazada=%v, se esperaba %v (err=%v)", tc.when, got, tc.want, err)
		}
	}
}

func TestCheckConflictsDuplicateEngagement(t *testing.T) {
	rules := NewRules(santiago)

	snap := Snapshot{
		OpenWithVet: []models.Appointment{scheduledAt(at(t, "2026-07-10 11:00"))},
	}

	cand := Candidate{
		Pet:         &models.Pet{Name: "Kira", Active: true},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-02 10:00"),
	}

	err := rules.CheckConflicts(cand, snap)
	if !httperr.IsRule(err, httperr.RuleDuplicateActiveEngagement) {
		t.Fatalf("expected duplicate_active_engagement, got %v", err)
	}
}

func TestCheckConflictsCapacityBeforeSeparation(t *testing.T) {
	rules := NewRules(santiago)

	// Día lleno Y solapada con una existente: gana capacidad (regla 3).
	var snap Snapshot
	start := at(t, "2026-07-02 09:00")
	for i := 0; i < DailyCapacity; i++ {
		snap.SameDay = append(snap.SameDay, scheduledAt(start.Add(time.Duration(i)*30*time.Minute)))
	}

	cand := Candidate{
		Pet:         &models.Pet{Name: "Kira", Active: true},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-02 09:10"),
	}

	err := rules.CheckConflicts(cand, snap)
	if !httperr.IsRule(err, httperr.RuleDailyCapacityExceeded) {
		t.Fatalf("expected daily_capacity_exceeded first, got %v", err)
	}
}

func TestCheckAllAccepts(t *testing.T) {
	rules := NewRules(santiago)
	now := at(t, "2026-07-01 12:00")

	snap := Snapshot{
		SameDay: []models.Appointment{scheduledAt(at(t, "2026-07-02 09:00"))},
	}

	cand := Candidate{
		Pet:         &models.Pet{Name: "Kira", Active: true},
		VetID:       1,
		ScheduledAt: at(t, "2026-07-02 10:00"),
	}

	if err := rules.CheckAll(cand, now, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
