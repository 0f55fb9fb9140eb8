package callsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight (0-1439).
// A *TimeOfDay of nil means unknown; the renderer shows unknown values as
// "TBD".
type TimeOfDay int

const minutesPerDay = 24 * 60

// timeOfDayRegex matches the loose time strings the extraction layer
// produces: "7:00 AM", "07:30", "7a", "7 pm", bare "7". Dots and spaces are
// stripped before matching.
var timeOfDayRegex = regexp.MustCompile(`^(\d{1,2})(?::([0-5]\d))?(A|P)?M?$`)

// ParseTimeOfDay parses a free-form time string. Empty, "TBD" and anything
// that fails every pattern parse to nil; this is permissive degrade, never
// an error.
//
// A value without an AM/PM marker is disambiguated by a fixed heuristic:
// hours 1-6 are read as PM, hours 7-12 as AM (call times cluster near
// sunrise and sunset). The heuristic is a documented guess and can
// misclassify 1-6 o'clock calls; it is kept as-is for layout stability.
func ParseTimeOfDay(s string) *TimeOfDay {
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	if cleaned == "" || cleaned == "TBD" {
		return nil
	}

	m := timeOfDayRegex.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return nil
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch {
	case m[3] == "A":
		if hour > 12 {
			return nil
		}
		if hour == 12 {
			hour = 0
		}
	case m[3] == "P":
		if hour > 12 {
			return nil
		}
		if hour != 12 {
			hour += 12
		}
	case hour >= 1 && hour <= 6:
		// No meridiem: the fixed heuristic reads 1-6 as PM.
		hour += 12
	}

	t := TimeOfDay(hour*60 + minute)
	return &t
}

// Add returns the time shifted by delta minutes, wrapping across midnight.
func (t TimeOfDay) Add(delta int) TimeOfDay {
	v := (int(t) + delta) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return TimeOfDay(v)
}

// String formats the time on a 12-hour clock, e.g. "6:30 AM", "12:05 PM".
// The minute value is normalized modulo 1440 first.
func (t TimeOfDay) String() string {
	v := int(t) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	hour, minute := v/60, v%60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// FormatTimeOfDay renders a possibly-unknown time, using "TBD" for nil.
func FormatTimeOfDay(t *TimeOfDay) string {
	if t == nil {
		return "TBD"
	}
	return t.String()
}
