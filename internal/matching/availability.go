package matching

import "fmt"

// AvailabilitySet is an ordered collection of disjoint date ranges owned by
// one subject (a volunteer's free windows or an event's scheduled windows).
// Disjointness is enforced at insertion time.
type AvailabilitySet struct {
	ranges []DateRange
}

// NewAvailabilitySet returns an empty set.
func NewAvailabilitySet() *AvailabilitySet {
	return &AvailabilitySet{}
}

// NewAvailabilitySetFromRanges builds a set by inserting each range in order,
// failing on the first rejected one.
func NewAvailabilitySetFromRanges(ranges []DateRange) (*AvailabilitySet, error) {
	set := NewAvailabilitySet()
	for _, r := range ranges {
		if err := set.Add(r); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Add appends a range to the set. It fails with ErrInvalidRange for an
// inverted range, ErrDuplicateRange for an exact repeat, and
// ErrOverlappingRange when the candidate intersects any member (closed
// intervals, so touching endpoints are rejected too). The set is unchanged
// on failure.
func (s *AvailabilitySet) Add(r DateRange) error {
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}
	for _, existing := range s.ranges {
		if existing.Equal(r) {
			return fmt.Errorf("%w: %s", ErrDuplicateRange, r)
		}
		if existing.Overlaps(r) {
			return fmt.Errorf("%w: %s intersects %s", ErrOverlappingRange, r, existing)
		}
	}
	s.ranges = append(s.ranges, r)
	return nil
}

// IntersectsAny reports whether any member of the set overlaps any of the
// given ranges. Quadratic, which is fine for the handful of windows a
// volunteer or event carries.
func (s *AvailabilitySet) IntersectsAny(others []DateRange) bool {
	for _, own := range s.ranges {
		for _, other := range others {
			if own.Overlaps(other) {
				return true
			}
		}
	}
	return false
}

// Ranges returns the members in insertion order.
func (s *AvailabilitySet) Ranges() []DateRange {
	out := make([]DateRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len returns the number of ranges in the set.
func (s *AvailabilitySet) Len() int {
	return len(s.ranges)
}
