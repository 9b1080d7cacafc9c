package AbstractFunctions

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// The deployment runs on El Salvador wall time (UTC-6, no DST).
const DefaultOffsetMinutes = -360

// ElapsedMinutes returns the rounded minute difference between two
// timestamps. end is not required to be after start; a negative result is
// returned as-is so callers can spot clock-skew or correction anomalies.
func ElapsedMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// EndOfDay returns the last representable instant of the given calendar day,
// 23:59:59.999. Punctuality comparisons run against this boundary rather
// than midnight.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999*int(time.Millisecond), date.Location())
}

// Localize shifts a timestamp by a fixed minute offset. The offset is a
// deployment constant, so no DST or fold handling applies.
func Localize(t time.Time, offsetMinutes int) time.Time {
	return t.Add(time.Duration(offsetMinutes) * time.Minute)
}

// LocalNow is the current instant shifted to deployment wall time.
func LocalNow() time.Time {
	return Localize(time.Now().UTC(), OffsetMinutes())
}

// OffsetMinutes reads TZ_OFFSET_MINUTES, falling back to the El Salvador
// offset the system has always run with.
func OffsetMinutes() int {
	if v := os.Getenv("TZ_OFFSET_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			return minutes
		}
	}
	return DefaultOffsetMinutes
}

// ParseDate parses an ISO calendar date. Older rows stored due dates as full
// timestamps, so anything after a 'T' is dropped before parsing.
func ParseDate(value string) (time.Time, error) {
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		value = value[:idx]
	}
	return time.Parse(DateLayout, value)
}
