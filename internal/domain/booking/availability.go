package booking

import (
	"time"

	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timeutil"
)

// Slot generation runs on a fixed grid; service durations only decide
// whether a candidate start still fits before closing.
const SlotStepMinutes = 30

const (
	ReasonClosed  = "closed"
	ReasonNoHours = "no-hours"
)

type AvailabilityInput struct {
	SalonID     uint
	Date        string // YYYY-MM-DD
	DurationMin int
}

type Slot struct {
	Time         string `json:"time"`
	CapacityLeft int    `json:"capacityLeft"`
}

// DayAvailability is the slot-listing result. Reason is set only when
// Slots is empty because the salon does not operate that day.
type DayAvailability struct {
	Slots  []Slot `json:"slots"`
	Reason string `json:"reason,omitempty"`
}

// BusyWindow is an existing appointment reduced to its wall-clock
// minute-of-day interval plus the staff member it occupies.
type BusyWindow struct {
	StaffID  uint
	StartMin int
	EndMin   int
}

// ToBusyWindows projects stored appointments onto the minute-of-day
// axis in the salon's timezone. Appointments are assumed not to span
// midnight; the API never produces one that does.
func ToBusyWindows(appointments []models.Appointment, loc *time.Location) []BusyWindow {
	windows := make([]BusyWindow, 0, len(appointments))
	for _, ap := range appointments {
		windows = append(windows, BusyWindow{
			StaffID:  ap.StaffID,
			StartMin: timeutil.MinuteOfDay(ap.StartAt, loc),
			EndMin:   timeutil.MinuteOfDay(ap.EndAt, loc),
		})
	}
	return windows
}

// BusyStaffCount returns how many distinct staff members have an
// appointment overlapping [startMin, endMin). Counting distinct staff
// rather than raw appointments keeps capacity honest when one member
// holds several bookings in the window.
func BusyStaffCount(windows []BusyWindow, startMin, endMin int) int {
	busy := make(map[uint]struct{})
	for _, w := range windows {
		if timeutil.Overlaps(startMin, endMin, w.StartMin, w.EndMin) {
			busy[w.StaffID] = struct{}{}
		}
	}
	return len(busy)
}

// StaffIsFree reports whether a staff member has no window overlapping
// [startMin, endMin). Both the slot listing and the allocator lean on
// the same half-open overlap predicate, so back-to-back bookings are
// never treated as conflicts.
func StaffIsFree(windows []BusyWindow, staffID uint, startMin, endMin int) bool {
	for _, w := range windows {
		if w.StaffID != staffID {
			continue
		}
		if timeutil.Overlaps(startMin, endMin, w.StartMin, w.EndMin) {
			return false
		}
	}
	return true
}
