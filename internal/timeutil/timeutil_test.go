package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:00", 600, false},
		{"10:30", 630, false},
		{"23:59", 1439, false},
		{"9:05", 545, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"10", 0, true},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "10:30", MinutesToTime(630))
	assert.Equal(t, "23:59", MinutesToTime(1439))
	// Out-of-range values run past 24h instead of wrapping.
	assert.Equal(t, "24:30", MinutesToTime(1470))
}

func TestToMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m += 17 {
		got, err := ToMinutes(MinutesToTime(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 60, 120, 180, 240, false},
		{"disjoint after", 180, 240, 60, 120, false},
		{"back to back", 60, 120, 120, 180, false},
		{"back to back reversed", 120, 180, 60, 120, false},
		{"partial overlap", 60, 130, 120, 180, true},
		{"contained", 60, 240, 120, 180, true},
		{"identical", 60, 120, 60, 120, true},
		{"one minute overlap", 60, 121, 120, 180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	at := time.Date(2026, 3, 2, 11, 45, 59, 0, loc)
	assert.Equal(t, 11*60+45, MinuteOfDay(at, loc))

	// Converting a UTC instant picks up the salon wall clock.
	utc := at.UTC()
	assert.Equal(t, 11*60+45, MinuteOfDay(utc, loc))
}
