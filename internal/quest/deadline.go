package quest

import (
	"strconv"
	"strings"
	"time"
)

// DeadlineLayout is the calendar-date format accepted from date inputs.
const DeadlineLayout = "2006-01-02"

// ParseDeadline parses a calendar date string. Invalid or absent input
// yields the zero time with ok=false; the caller treats that as "no
// deadline" rather than an error.
func ParseDeadline(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(DeadlineLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

// FormatDeadline renders a deadline for a date input value. A zero deadline
// renders as the empty string.
func FormatDeadline(deadline time.Time) string {
	if deadline.IsZero() {
		return ""
	}
	return deadline.Format(DeadlineLayout)
}

// ParseDurationText heuristically converts AI duration text like "2 weeks"
// into a day count. The first integer in the text is the amount (1 when
// absent); the unit keyword is matched in the order month, week, day, year,
// so mixed phrases resolve to the first matching unit only. Text with no
// unit keyword yields ok=false and sets no deadline.
func ParseDurationText(text string) (int, bool) {
	lowered := strings.ToLower(text)

	amount := 1
	if digits := firstInteger(lowered); digits != "" {
		if parsed, err := strconv.Atoi(digits); err == nil {
			amount = parsed
		}
	}

	switch {
	case strings.Contains(lowered, "month"):
		return amount * 30, true
	case strings.Contains(lowered, "week"):
		return amount * 7, true
	case strings.Contains(lowered, "day"):
		return amount, true
	case strings.Contains(lowered, "year"):
		return amount * 365, true
	default:
		return 0, false
	}
}

// DurationDeadline resolves duration text to an absolute deadline offset
// from now. ok is false when the text carries no recognizable unit.
func DurationDeadline(now time.Time, text string) (time.Time, bool) {
	days, ok := ParseDurationText(text)
	if !ok {
		return time.Time{}, false
	}
	return now.AddDate(0, 0, days), true
}

func firstInteger(value string) string {
	start := -1
	for i, r := range value {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			return value[start:i]
		}
	}
	if start == -1 {
		return ""
	}
	return value[start:]
}
