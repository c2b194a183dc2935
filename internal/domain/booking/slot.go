package booking

import (
	"fmt"
	"time"
)

// Business day: 9 fixed one-hour slots from 09:00 to 18:00, site-local time.
const (
	BusinessDayStartHour = 9
	BusinessDayEndHour   = 18
	SlotCount            = BusinessDayEndHour - BusinessDayStartHour
	SlotDuration         = time.Hour
)

// BusyInterval is an occupied range reported by the external calendar.
// Half-open: the end instant is not occupied.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is one fixed 60-minute window of the business day. Derived, never stored.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label renders the slot the way users see it, e.g. "9:00 - 10:00".
func (s Slot) Label() string {
	return fmt.Sprintf("%d:00 - %d:00", s.Start.Hour(), s.End.Hour())
}

// HourParam renders the start hour used in reservation links, e.g. "9:00".
func (s Slot) HourParam() string {
	return fmt.Sprintf("%d:00", s.Start.Hour())
}

// DayGrid returns the 9 fixed slots of the business day anchored on date.
func DayGrid(date time.Time, loc *time.Location) []Slot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), BusinessDayStartHour, 0, 0, 0, loc)

	slots := make([]Slot, 0, SlotCount)
	for i := 0; i < SlotCount; i++ {
		start := dayStart.Add(time.Duration(i) * SlotDuration)
		slots = append(slots, Slot{Start: start, End: start.Add(SlotDuration)})
	}
	return slots
}

// FreeSlots returns, in chronological order, the grid slots not overlapped by any
// busy interval. Touching boundaries do not count as overlap.
func FreeSlots(date time.Time, loc *time.Location, busy []BusyInterval) []Slot {
	free := make([]Slot, 0, SlotCount)
	for _, slot := range DayGrid(date, loc) {
		if !overlapsAny(slot, busy) {
			free = append(free, slot)
		}
	}
	return free
}

func overlapsAny(s Slot, busy []BusyInterval) bool {
	for _, b := range busy {
		if s.Start.Before(b.End) && s.End.After(b.Start) {
			return true
		}
	}
	return false
}
