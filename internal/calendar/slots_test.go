package calendar

import (
	"testing"
	"time"
)

func clockRange(t *testing.T, start, end string) ClockRange {
	t.Helper()
	s, err := ParseClock(start)
	if err != nil {
		t.Fatalf("parse %q: %v", start, err)
	}
	e, err := ParseClock(end)
	if err != nil {
		t.Fatalf("parse %q: %v", end, err)
	}
	r, err := BetweenClocks(s, e)
	if err != nil {
		t.Fatalf("range %s-%s: %v", start, end, err)
	}
	return r
}

func hm(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func containsStart(starts []time.Duration, d time.Duration) bool {
	for _, s := range starts {
		if s == d {
			return true
		}
	}
	return false
}

func TestComputeFreeSlots_ExistingAppointmentBlocksOverlaps(t *testing.T) {
	working := []ClockRange{clockRange(t, "09:00", "17:00")}
	existing := []ClockRange{clockRange(t, "10:00", "11:00")}

	free, err := ComputeFreeSlots(working, existing, 60, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if containsStart(free, hm(9, 30)) {
		t.Fatalf("09:30 overlaps 10:00-11:00 and must not be free")
	}
	if containsStart(free, hm(10, 30)) {
		t.Fatalf("10:30 overlaps 10:00-11:00 and must not be free")
	}
	if containsStart(free, hm(10, 0)) {
		t.Fatalf("10:00 is taken")
	}
	if !containsStart(free, hm(11, 0)) {
		t.Fatalf("11:00 should be free, got %v", free)
	}
	if !containsStart(free, hm(9, 0)) {
		t.Fatalf("09:00 touches the appointment only at its end and should be free")
	}
	if containsStart(free, hm(16, 30)) {
		t.Fatalf("16:30 + 60m runs past working hours")
	}
	if free[len(free)-1] != hm(16, 0) {
		t.Fatalf("last start = %v, want 16:00", free[len(free)-1])
	}
}

func TestComputeFreeSlots_MultipleIntervalsOrdered(t *testing.T) {
	working := []ClockRange{
		clockRange(t, "14:00", "15:00"),
		clockRange(t, "09:00", "10:00"),
	}

	free, err := ComputeFreeSlots(working, nil, 30, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Duration{hm(9, 0), hm(9, 30), hm(14, 0), hm(14, 30)}
	if len(free) != len(want) {
		t.Fatalf("expected %v, got %v", want, free)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, free)
		}
	}
}

func TestComputeFreeSlots_InvalidInput(t *testing.T) {
	working := []ClockRange{clockRange(t, "09:00", "10:00")}

	if _, err := ComputeFreeSlots(working, nil, 0, 15); err != ErrSlotDuration {
		t.Fatalf("expected ErrSlotDuration, got %v", err)
	}
	if _, err := ComputeFreeSlots(working, nil, 30, 0); err != ErrSlotStep {
		t.Fatalf("expected ErrSlotStep, got %v", err)
	}
}

func TestComputeFreeSlots_NoWorkingHours(t *testing.T) {
	free, err := ComputeFreeSlots(nil, nil, 30, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 0 {
		t.Fatalf("expected no slots, got %v", free)
	}
}
