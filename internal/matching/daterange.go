package matching

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date ranges are calendar-date granular. Parsed values are normalized to
// midnight UTC so comparisons never depend on time-of-day or zone.
const (
	dateLayout     = "2006-01-02"
	rangeSeparator = " to "
)

var (
	ErrInvalidRange     = errors.New("invalid date range: start is after end")
	ErrMalformedRange   = errors.New("malformed date range")
	ErrDuplicateRange   = errors.New("duplicate date range")
	ErrOverlappingRange = errors.New("overlapping date range")
)

// DateRange is a closed calendar-date interval. Both boundaries are included.
// Immutable once constructed through NewDateRange or ParseRange.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a validated range. Inputs are truncated to their UTC
// calendar date. Returns ErrInvalidRange when start is after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateToDate(start), End: truncateToDate(end)}
	if r.Start.After(r.End) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// ParseRange parses the stored textual form "YYYY-MM-DD to YYYY-MM-DD".
// Malformed input is an error, never silently defaulted.
func ParseRange(s string) (DateRange, error) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[0]), time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: bad start date in %q", ErrMalformedRange, s)
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[1]), time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: bad end date in %q", ErrMalformedRange, s)
	}
	return NewDateRange(start, end)
}

// ParseRanges parses a list of stored range strings, failing on the first
// malformed entry.
func ParseRanges(raw []string) ([]DateRange, error) {
	ranges := make([]DateRange, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRange(s)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Overlaps reports whether two closed intervals intersect. Touching
// boundaries count: a range ending on day X overlaps one starting on day X.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Overlaps reports whether r and o share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return Overlaps(r.Start, r.End, o.Start, o.End)
}

// Equal reports whether both boundaries match exactly.
func (r DateRange) Equal(o DateRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// String renders the canonical stored form.
func (r DateRange) String() string {
	return r.Start.Format(dateLayout) + rangeSeparator + r.End.Format(dateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
