package timeutil

import (
	"fmt"
	"time"
)

// ToMinutes parses a 24h "HH:MM" wall-clock string into minutes since
// local midnight.
func ToMinutes(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return h*60 + m, nil
}

// MinutesToTime is the zero-padded inverse of ToMinutes. Values outside
// [0,1439] produce an hour >= 24 rather than wrapping; callers must not
// build such values for display.
func MinutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap, so an
// appointment ending exactly when another starts is not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// MinuteOfDay returns the wall-clock minute of day of t in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
