package slot

import (
	"fmt"
	"strings"
)

// Bookable hours run 09:00 to 18:00 in half-hour steps, 18 slots per day.
const (
	openingHour = 9
	closingHour = 18
	PerDay      = (closingHour - openingHour) * 2
)

// Catalog returns the fixed ordered set of bookable slots for any day.
// The result is freshly allocated so callers may mutate it.
func Catalog() []string {
	slots := make([]string, 0, PerDay)
	for hour := openingHour; hour < closingHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:30", hour, hour))
		slots = append(slots, fmt.Sprintf("%02d:30-%02d:00", hour, hour+1))
	}
	return slots
}

// Parse splits a stored comma-joined slot string into individual slots,
// trimming whitespace and dropping empty entries.
func Parse(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var slots []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			slots = append(slots, part)
		}
	}
	return slots
}

// Join serializes slots back to the wire format ("a, b, c").
func Join(slots []string) string {
	return strings.Join(slots, ", ")
}

// Range is a [start, end) time range with "HH:MM" endpoints. Endpoints
// compare correctly as strings because of the fixed zero-padded format.
type Range [2]string

// ParseRanges extracts the time ranges from a comma-joined slot string.
// Malformed entries are skipped.
func ParseRanges(s string) []Range {
	var ranges []Range
	for _, sl := range Parse(s) {
		parts := strings.Split(sl, "-")
		if len(parts) == 2 {
			ranges = append(ranges, Range{parts[0], parts[1]})
		}
	}
	return ranges
}

// Overlap reports whether two ranges share any time.
func Overlap(a, b Range) bool {
	return !(a[1] <= b[0] || a[0] >= b[1])
}

// AnyOverlap reports whether any range in as overlaps any range in bs.
func AnyOverlap(as, bs []Range) bool {
	for _, a := range as {
		for _, b := range bs {
			if Overlap(a, b) {
				return true
			}
		}
	}
	return false
}
