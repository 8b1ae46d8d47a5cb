package consultation

import (
	"testing"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
)

func TestValidateCost(t *testing.T) {
	cases := []struct {
		cost float64
		ok   bool
	}{
		{5000, false},   // la cota inferior es excluyente
		{5000.01, true}, // justo sobre la cota
		{4999, false},
		{100000, true},
		{199999.99, true},
		{200000, false}, // la cota superior es excluyente
		{250000, false},
		{0, false},
		{-100, false},
	}

	for _, tc := range cases {
		err := ValidateCost(tc.cost)
		if tc.ok && err != nil {
			t.Errorf("cost %.2f: unexpected error %v", tc.cost, err)
		}
		if !tc.ok && !httperr.IsRule(err, httperr.RuleCostOutOfRange) {
			t.Errorf("cost %.2f: expected cost_out_of_range, got %v", tc.cost, err)
		}
	}
}

func TestValidateFollowUp(t *testing.T) {
	loc, _ := time.LoadLocation("America/Santiago")
	today := time.Date(2026, 7, 1, 0, 0, 0, 0, loc)

	yesterday := today.AddDate(0, 0, -1)
	if err := ValidateFollowUp(yesterday, today); !httperr.IsRule(err, httperr.RuleFollowUpInPast) {
		t.Fatalf("expected follow_up_in_past, got %v", err)
	}

	// Hoy mismo es válido.
	if err := ValidateFollowUp(today, today); err != nil {
		t.Fatalf("today: %v", err)
	}

	tomorrow := today.AddDate(0, 0, 1)
	if err := ValidateFollowUp(tomorrow, today); err != nil {
		t.Fatalf("tomorrow: %v", err)
	}
}

func TestFollowUpAtFixedHour(t *testing.T) {
	loc, _ := time.LoadLocation("America/Santiago")

	date := time.Date(2026, 7, 1, 16, 45, 12, 0, loc)
	got := FollowUpAt(date, loc)

	want := time.Date(2026, 7, 1, FollowUpHour, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("FollowUpAt = %v, want %v", got, want)
	}
}
