package service

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// DateLayout is the at-rest format of Exercise.Date.
	DateLayout = "2006-01-02"
	// CalendarLayout is the human-readable log format, e.g. "Fri May 05 2023".
	CalendarLayout = "Mon Jan 02 2006"
	// InvalidDate is rendered for stored values that are not YYYY-MM-DD at all.
	InvalidDate = "Invalid Date"
)

// Digit ranges only; "2024-02-31" matches.
var datePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// NormalizeDate returns candidate unchanged when it looks like YYYY-MM-DD,
// otherwise the UTC calendar date of now.
func NormalizeDate(candidate string, now time.Time) string {
	if datePattern.MatchString(candidate) {
		return candidate
	}
	return now.UTC().Format(DateLayout)
}

// parseStoredDate reads a YYYY-MM-DD value as midnight UTC. Days past the
// end of the month roll over, so "2024-02-31" is 2 March 2024.
func parseStoredDate(s string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// FormatCalendarDate renders a stored date for display.
func FormatCalendarDate(s string) string {
	t, ok := parseStoredDate(s)
	if !ok {
		return InvalidDate
	}
	return t.Format(CalendarLayout)
}

// boundLayouts are accepted for the from/to query parameters after YYYY-MM-DD.
var boundLayouts = []string{time.RFC3339, CalendarLayout}

// parseBound reads a from/to query value. Date-only values are midnight UTC.
func parseBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, ok := parseStoredDate(s); ok {
		return t, true
	}
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows: "30" and "30.9min" both
// give 30. ok is false when no digit is found. Values beyond the int range
// saturate.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(sign+s[:end], 10, 0)
	if err != nil {
		// Only a range error is possible here.
		if sign == "-" {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(v), true
}

// ParseLimit converts a limit query value the way a numeric comparison
// against the loop index would: the whole string must be a number, and a
// fractional limit admits one more index ("1.5" selects 2). Anything that
// is not a number, or is not positive, selects nothing.
func ParseLimit(s string) int {
	f, ok := parseNumber(strings.TrimSpace(s))
	switch {
	case !ok || f <= 0:
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	}
	return int(math.Ceil(f))
}

// parseNumber accepts decimal literals with optional sign and exponent,
// 0x/0o/0b integers and Infinity. An empty string is 0.
func parseNumber(s string) (float64, bool) {
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if errors.Is(err, strconv.ErrRange) {
				return math.Inf(1), true
			}
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
	}

	// ParseFloat also takes "inf", "nan", hex floats and underscores.
	if strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789+-.eE", r) }) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	if err != nil {
		return 0, false
	}
	return f, true
}
