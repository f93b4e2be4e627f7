package services

import (
	"fmt"
	"time"

	"doener-shop/models"
)

var germanWeekdays = map[time.Weekday]string{
	time.Sunday:    "Sonntag",
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
}

// OpeningHours describes the weekly schedule. Opening, LateOpening and
// Closing are wall-clock times of day in Location.
type OpeningHours struct {
	Location       *time.Location
	ClosedDay      time.Weekday
	LateOpeningDay time.Weekday
	LateOpening    time.Duration
	Opening        time.Duration
	Closing        time.Duration
	SlotStep       time.Duration
	LeadTime       time.Duration
}

func DefaultOpeningHours(loc *time.Location) *OpeningHours {
	if loc == nil {
		loc = time.Local
	}
	return &OpeningHours{
		Location:       loc,
		ClosedDay:      time.Tuesday,
		LateOpeningDay: time.Monday,
		LateOpening:    16 * time.Hour,
		Opening:        12 * time.Hour,
		Closing:        22*time.Hour + 30*time.Minute,
		SlotStep:       15 * time.Minute,
		LeadTime:       20 * time.Minute,
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// wallClock returns the instant at the given time of day on t's calendar
// date, so DST changes never shift the schedule.
func wallClock(t time.Time, offset time.Duration) time.Time {
	y, m, d := t.Date()
	minutes := int(offset / time.Minute)
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, t.Location())
}

// window returns the opening and closing instants of t's day. ok is false on
// the closed day.
func (h *OpeningHours) window(t time.Time) (open, close time.Time, ok bool) {
	local := t.In(h.Location)
	if local.Weekday() == h.ClosedDay {
		return time.Time{}, time.Time{}, false
	}
	opening := h.Opening
	if local.Weekday() == h.LateOpeningDay {
		opening = h.LateOpening
	}
	return wallClock(local, opening), wallClock(local, h.Closing), true
}

func (h *OpeningHours) IsOpen(t time.Time) bool {
	open, close, ok := h.window(t)
	if !ok {
		return false
	}
	return !t.Before(open) && t.Before(close)
}

func (h *OpeningHours) Status(t time.Time) models.OpeningStatus {
	local := t.In(h.Location)
	open, close, ok := h.window(local)

	status := models.OpeningStatus{IsClosedDay: !ok}
	if !ok {
		status.CurrentHours = "Ruhetag"
		status.NextOpening = h.nextOpening(local)
		return status
	}

	status.CurrentHours = fmt.Sprintf("%s–%s", open.Format("15:04"), close.Format("15:04"))
	status.IsOpen = h.IsOpen(local)
	switch {
	case local.Before(open):
		status.NextOpening = fmt.Sprintf("heute ab %s Uhr wieder geöffnet", open.Format("15:04"))
	case !local.Before(close):
		status.NextOpening = h.nextOpening(local)
	}
	return status
}

func (h *OpeningHours) nextOpening(t time.Time) string {
	day := midnight(t)
	for i := 1; i <= 7; i++ {
		next := day.AddDate(0, 0, i)
		if open, _, ok := h.window(next); ok {
			return fmt.Sprintf("%s ab %s Uhr wieder geöffnet", germanWeekdays[next.Weekday()], open.Format("15:04"))
		}
	}
	return ""
}

// Slots lists today's pickup/delivery times in SlotStep increments that are
// at least LeadTime away from now and before closing.
func (h *OpeningHours) Slots(now time.Time) []string {
	local := now.In(h.Location)
	open, close, ok := h.window(local)
	slots := []string{}
	if !ok {
		return slots
	}

	earliest := local.Add(h.LeadTime)
	if earliest.Before(open) {
		earliest = open
	}

	y, m, d := local.Date()
	if ey, em, ed := earliest.Date(); ey != y || em != m || ed != d {
		return slots
	}

	step := int(h.SlotStep / time.Minute)
	minute := earliest.Hour()*60 + earliest.Minute()
	if earliest.Second() > 0 || earliest.Nanosecond() > 0 {
		minute++
	}
	if rem := minute % step; rem != 0 {
		minute += step - rem
	}

	for ; ; minute += step {
		slot := wallClock(local, time.Duration(minute)*time.Minute)
		if !slot.Before(close) {
			break
		}
		slots = append(slots, slot.Format("15:04"))
	}
	return slots
}

func (h *OpeningHours) IsValidSlot(now time.Time, slot string) bool {
	for _, s := range h.Slots(now) {
		if s == slot {
			return true
		}
	}
	return false
}
