package services

import (
	"testing"
	"time"
	_ "time/tzdata"
)

var shopZone = time.FixedZone("CEST", 2*3600)

// 2024-05-06 is a Monday.
func shopTime(day, hour, minute int) time.Time {
	return time.Date(2024, time.May, day, hour, minute, 0, 0, shopZone)
}

func TestIsOpen(t *testing.T) {
	h := DefaultOpeningHours(shopZone)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday before late opening", shopTime(6, 15, 59), false},
		{"monday late opening", shopTime(6, 16, 0), true},
		{"tuesday closed", shopTime(7, 13, 0), false},
		{"wednesday noon", shopTime(8, 12, 0), true},
		{"wednesday last minute", shopTime(8, 22, 29), true},
		{"wednesday closing", shopTime(8, 22, 30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsOpen(tt.at); got != tt.want {
				t.Fatalf("IsOpen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	h := DefaultOpeningHours(shopZone)

	closed := h.Status(shopTime(7, 13, 0))
	if !closed.IsClosedDay || closed.CurrentHours != "Ruhetag" || closed.NextOpening != "Mittwoch ab 12:00 Uhr wieder geöffnet" {
		t.Fatalf("tuesday status = %+v", closed)
	}

	early := h.Status(shopTime(6, 10, 0))
	if early.IsOpen || early.NextOpening != "heute ab 16:00 Uhr wieder geöffnet" {
		t.Fatalf("monday morning status = %+v", early)
	}

	late := h.Status(shopTime(8, 23, 0))
	if late.IsOpen || late.NextOpening != "Donnerstag ab 12:00 Uhr wieder geöffnet" {
		t.Fatalf("wednesday night status = %+v", late)
	}

	open := h.Status(shopTime(8, 18, 0))
	if !open.IsOpen || open.NextOpening != "" {
		t.Fatalf("open status = %+v", open)
	}
}

func TestSlotsRespectLeadTimeAndClosing(t *testing.T) {
	h := DefaultOpeningHours(shopZone)

	slots := h.Slots(shopTime(8, 12, 7))
	if len(slots) == 0 || slots[0] != "12:30" || slots[len(slots)-1] != "22:15" {
		t.Fatalf("slots = %v", slots)
	}
	if len(slots) != 40 {
		t.Fatalf("len(slots) = %d, want 40", len(slots))
	}

	if got := h.Slots(shopTime(6, 9, 0)); got[0] != "16:00" {
		t.Fatalf("monday first slot = %s", got[0])
	}
	if got := h.Slots(shopTime(7, 12, 0)); len(got) != 0 {
		t.Fatalf("tuesday slots = %v", got)
	}
	if got := h.Slots(shopTime(8, 22, 20)); len(got) != 0 {
		t.Fatalf("slots after last call = %v", got)
	}
}

func TestIsValidSlot(t *testing.T) {
	h := DefaultOpeningHours(shopZone)
	now := shopTime(8, 18, 0)

	if !h.IsValidSlot(now, "18:30") {
		t.Error("18:30 should be valid")
	}
	if h.IsValidSlot(now, "18:15") {
		t.Error("18:15 is inside the lead time")
	}
	if h.IsValidSlot(now, "18:20") {
		t.Error("18:20 is off the slot grid")
	}
}

func TestScheduleKeepsWallClockAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	h := DefaultOpeningHours(berlin)

	// Both are Sundays: clocks go forward on the first and back on the second.
	for _, day := range []time.Time{
		time.Date(2026, time.March, 29, 9, 0, 0, 0, berlin),
		time.Date(2026, time.October, 25, 9, 0, 0, 0, berlin),
	} {
		t.Run(day.Format("2006-01-02"), func(t *testing.T) {
			at := func(hour, minute int) time.Time {
				return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, berlin)
			}

			if got := h.Status(day).CurrentHours; got != "12:00–22:30" {
				t.Fatalf("hours = %q", got)
			}
			if !h.IsOpen(at(12, 30)) {
				t.Error("closed at 12:30")
			}
			if h.IsOpen(at(22, 45)) {
				t.Error("open at 22:45")
			}

			slots := h.Slots(day)
			if len(slots) != 42 || slots[0] != "12:00" || slots[len(slots)-1] != "22:15" {
				t.Fatalf("slots = %v", slots)
			}
			if h.IsValidSlot(day, "23:15") {
				t.Error("23:15 accepted after closing")
			}
		})
	}
}
