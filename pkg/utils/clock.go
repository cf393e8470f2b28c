package utils

import (
	"strconv"
	"strings"
)

// UnparseableClock sorts after any real clock value (last of the day).
const UnparseableClock = 1 << 30

// ClockMinutes converts a display time like "9:00 AM" or a range like
// "9:00 AM - 11:30 AM" into minutes since midnight. Only the start of a
// range is considered. Unparseable input returns UnparseableClock so
// callers can sort it last without special-casing.
func ClockMinutes(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return UnparseableClock
	}

	if i := strings.Index(s, " - "); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return UnparseableClock
	}

	clock, meridiem := fields[0], strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return UnparseableClock
	}

	hm := strings.SplitN(clock, ":", 2)
	if len(hm) != 2 {
		return UnparseableClock
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return UnparseableClock
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return UnparseableClock
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return UnparseableClock
	}

	// 12 AM is midnight, 12 PM stays noon.
	switch {
	case hour == 12 && meridiem == "AM":
		hour = 0
	case hour != 12 && meridiem == "PM":
		hour += 12
	}

	return hour*60 + minute
}
