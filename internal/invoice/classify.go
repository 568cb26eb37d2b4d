package invoice

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	clockWithMinutes = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)
	clockHourOnly    = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
)

// ParseClockTime reads a time of day like "4:35pm", "16:30" or "4pm".
// A bare H:MM is taken as already 24-hour; an am/pm suffix converts
// (pm adds 12 to hours below 12, 12am becomes 0). Anything else is a
// parse failure.
func ParseClockTime(text string) (hour, minute int, ok bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, 0, false
	}

	if m := clockWithMinutes.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return hour, minute, true
	}

	if m := clockHourOnly.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] == "pm" && hour < 12 {
			hour += 12
		}
		if m[2] == "am" && hour == 12 {
			hour = 0
		}
		return hour, 0, true
	}

	return 0, 0, false
}

// DetectCategory infers the rate category for a shift from its
// day-of-week label and start time. The rules apply in order:
//
//  1. A blank day is ordinary, regardless of start time.
//  2. A day starting with "sun" or containing "sunday" is sunday.
//  3. A day starting with "sat" or containing "saturday" is saturday.
//  4. Otherwise a shift starting at 15:00 or later is afternoon.
//  5. Everything else, including an unparsable start time, is ordinary.
func DetectCategory(day, start string) Category {
	if day == "" {
		return CategoryOrdinary
	}
	d := strings.ToLower(strings.TrimSpace(day))
	if strings.HasPrefix(d, "sun") || strings.Contains(d, "sunday") {
		return CategorySunday
	}
	if strings.HasPrefix(d, "sat") || strings.Contains(d, "saturday") {
		return CategorySaturday
	}
	if hour, _, ok := ParseClockTime(start); ok && hour >= 15 {
		return CategoryAfternoon
	}
	return CategoryOrdinary
}

// ResolveCategory returns the record's explicit override when set,
// otherwise the inferred category.
func (r ShiftRecord) ResolveCategory() Category {
	if r.Override != "" {
		return r.Override
	}
	return DetectCategory(r.Day, r.Start)
}
