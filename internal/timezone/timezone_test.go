package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBack(t *testing.T) {
	if Location("").String() != DefaultTimezone {
		t.Fatalf("Location(\"\") = %s", Location("").String())
	}
	if Location("No/Existe").String() != DefaultTimezone {
		t.Fatalf("Location inválida = %s", Location("No/Existe").String())
	}
	if Location("UTC").String() != "UTC" {
		t.Fatalf("Location(UTC) = %s", Location("UTC").String())
	}
}

func TestDayBounds(t *testing.T) {
	loc := Location(DefaultTimezone)

	ts := time.Date(2026, 7, 2, 15, 45, 30, 0, loc)
	start, end := DayBounds(ts, loc)

	wantStart := time.Date(2026, 7, 2, 0, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("end = %v", end)
	}

	// Un instante UTC se resuelve al día calendario local.
	utc := time.Date(2026, 7, 3, 2, 0, 0, 0, time.UTC) // 22:00 del 2 en Santiago (invierno)
	start, _ = DayBounds(utc, loc)
	if !start.Equal(wantStart) {
		t.Fatalf("start desde UTC = %v", start)
	}
}

func TestDayBoundsDSTTransitions(t *testing.T) {
	loc := Location(DefaultTimezone)

	// 2026-04-04: termina el horario de verano, el día dura 25 horas.
	// El fin debe ser la medianoche calendario del 5, no start+24h.
	start, end := DayBounds(time.Date(2026, 4, 4, 12, 0, 0, 0, loc), loc)
	if got := end.Sub(start); got != 25*time.Hour {
		t.Fatalf("día largo: duración = %v", got)
	}
	if end.Day() != 5 || end.Hour() != 0 {
		t.Fatalf("día largo: end = %v", end)
	}

	// 2026-09-05: empieza el horario de verano, el día dura 23 horas.
	start, end = DayBounds(time.Date(2026, 9, 5, 12, 0, 0, 0, loc), loc)
	if got := end.Sub(start); got != 23*time.Hour {
		t.Fatalf("día corto: duración = %v", got)
	}
	if end.Day() != 6 || end.Hour() != 0 {
		t.Fatalf("día corto: end = %v", end)
	}
}
