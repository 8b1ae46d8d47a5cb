package appointment

import (
	"testing"
	"time"

	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
)

func TestStatusIsTerminal(t *testing.T) {
	if StatusScheduled.IsTerminal() {
		t.Fatal("scheduled no es terminal")
	}
	if !StatusCompleted.IsTerminal() {
		t.Fatal("completed es terminal")
	}
	if !StatusCancelled.IsTerminal() {
		t.Fatal("cancelled es terminal")
	}
}

func TestTransitionGuards(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		if err := CanCancel(terminal); !httperr.IsRule(err, httperr.RuleInvalidStateTransition) {
			t.Errorf("CanCancel(%s) = %v", terminal, err)
		}
		if err := CanComplete(terminal); !httperr.IsRule(err, httperr.RuleInvalidStateTransition) {
			t.Errorf("CanComplete(%s) = %v", terminal, err)
		}
		if err := CanReschedule(terminal); !httperr.IsRule(err, httperr.RuleInvalidStateTransition) {
			t.Errorf("CanReschedule(%s) = %v", terminal, err)
		}
	}

	if err := CanCancel(StatusScheduled); err != nil {
		t.Fatalf("CanCancel(scheduled) = %v", err)
	}
	if err := CanComplete(StatusScheduled); err != nil {
		t.Fatalf("CanComplete(scheduled) = %v", err)
	}
	if err := CanReschedule(StatusScheduled); err != nil {
		t.Fatalf("CanReschedule(scheduled) = %v", err)
	}
}

func TestCancelSetsTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("status = %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("cancelled_at = %v", ap.CancelledAt)
	}
}

func TestCompleteSetsTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("status = %s", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("completed_at = %v", ap.CompletedAt)
	}
}

func TestCompleteRejectsCancelled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCancelled)}

	err := Complete(ap, time.Now())
	if !httperr.IsRule(err, httperr.RuleInvalidStateTransition) {
		t.Fatalf("expected invalid_state_transition, got %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("el estado no debe mutar: %s", ap.Status)
	}
}
