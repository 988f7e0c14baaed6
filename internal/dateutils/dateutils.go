// Package dateutils converts the date and time encodings used by Flex Query
// reports and the Flex Web Service into Go values.
//
// Reports encode dates as yyyyMMdd or yyyy-MM-dd, times as HHmmss or
// HH:mm:ss, and timestamps as "date;time" (older reports use "date,time").
// Every parser in this package is total: unparsable input yields ok == false
// and never an error.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts understood by the parsers.
const (
	DateLayoutCompact = "20060102"
	DateLayoutISO     = "2006-1-2"
	TimeLayoutCompact = "150405"
	TimeLayoutColon   = "15:04:05"

	// RequestDateLayout is the fd/td parameter format of SendRequest.
	RequestDateLayout = DateLayoutCompact
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, ok := ParseTime(string(text))
	if !ok {
		return fmt.Errorf("invalid time of day %q", string(text))
	}
	*t = parsed
	return nil
}

// On returns the instant at t on the calendar day of d, in d's location.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, t.Second, 0, d.Location())
}

// isBlank reports the placeholder values Flex uses for "no value".
func isBlank(value string) bool {
	return value == "" || value == "0" || value == "N/A"
}

// ParseDate parses yyyyMMdd or yyyy-MM-dd into a UTC midnight time.
func ParseDate(value string) (time.Time, bool) {
	if isBlank(value) {
		return time.Time{}, false
	}

	var layout string
	switch {
	case len(value) == 8:
		layout = DateLayoutCompact
	case strings.Contains(value, "-"):
		layout = DateLayoutISO
	default:
		return time.Time{}, false
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTime parses HHmmss or HH:mm:ss.
func ParseTime(value string) (TimeOfDay, bool) {
	if isBlank(value) {
		return TimeOfDay{}, false
	}

	var layout string
	switch {
	case len(value) == 6:
		layout = TimeLayoutCompact
	case strings.Contains(value, ":"):
		layout = TimeLayoutColon
	default:
		return TimeOfDay{}, false
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
}

// ParseDateTime parses "date;time", the legacy "date,time", or a bare
// yyyyMMdd date which is taken at midnight. Both halves of a separated value
// must parse.
func ParseDateTime(value string) (time.Time, bool) {
	if isBlank(value) {
		return time.Time{}, false
	}

	switch {
	case strings.Contains(value, ";"):
		return combine(value, ";", false)
	case strings.Contains(value, ","):
		return combine(value, ",", true)
	case len(value) == 8:
		return ParseDate(value)
	default:
		return time.Time{}, false
	}
}

func combine(value, sep string, trimTime bool) (time.Time, bool) {
	parts := strings.Split(value, sep)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	timePart := parts[1]
	if trimTime {
		timePart = strings.TrimSpace(timePart)
	}

	d, ok := ParseDate(parts[0])
	if !ok {
		return time.Time{}, false
	}
	clock, ok := ParseTime(timePart)
	if !ok {
		return time.Time{}, false
	}
	return clock.On(d), true
}

// ParseBool parses the Y/N flags used by Flex, case-insensitively.
// The second result is false for anything else, including "".
func ParseBool(value string) (bool, bool) {
	switch strings.ToUpper(value) {
	case "Y":
		return true, true
	case "N":
		return false, true
	default:
		return false, false
	}
}

// NormalizeRequestDate converts yyyy-MM-dd to the yyyyMMdd form SendRequest
// expects. Other values are returned unchanged.
func NormalizeRequestDate(value string) string {
	if strings.Contains(value, "-") {
		return strings.ReplaceAll(value, "-", "")
	}
	return value
}

// FormatRequestDate formats t as yyyyMMdd.
func FormatRequestDate(t time.Time) string {
	return t.Format(RequestDateLayout)
}

// DefaultToDate returns the day before now as yyyyMMdd. The Flex Web Service
// requires both bounds when one is given; this is the CLI's choice for a
// missing upper bound.
func DefaultToDate(now time.Time) string {
	return FormatRequestDate(now.AddDate(0, 0, -1))
}
