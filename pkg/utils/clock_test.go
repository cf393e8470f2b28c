package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"morning", "9:00 AM", 9 * 60},
		{"afternoon", "2:30 PM", 14*60 + 30},
		{"noon", "12:00 PM", 12 * 60},
		{"midnight", "12:00 AM", 0},
		{"range takes start", "9:00 AM - 11:30 AM", 9 * 60},
		{"range across meridiem", "11:00 AM - 1:00 PM", 11 * 60},
		{"lowercase meridiem", "9:15 am", 9*60 + 15},
		{"padded", "  9:05 AM  ", 9*60 + 5},
		{"empty", "", UnparseableClock},
		{"no meridiem", "9:00", UnparseableClock},
		{"bad meridiem", "9:00 XM", UnparseableClock},
		{"no colon", "9 AM", UnparseableClock},
		{"hour out of range", "13:00 PM", UnparseableClock},
		{"minute out of range", "9:75 AM", UnparseableClock},
		{"words", "Afternoon", UnparseableClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockMinutes(tt.raw))
		})
	}
}

func TestClockMinutesUnparseableSortsLast(t *testing.T) {
	assert.Greater(t, ClockMinutes("garbage"), ClockMinutes("11:59 PM"))
}
