package matching

import "strings"

// SkillSet is a deduplicated set of skill labels. Labels are trimmed of
// surrounding whitespace on construction and compared case-sensitively;
// "first aid" and "First Aid" are distinct skills.
type SkillSet struct {
	labels []string
	index  map[string]struct{}
}

// NewSkillSet builds a set from raw labels, trimming whitespace and dropping
// empties and duplicates. Insertion order of first occurrences is kept.
func NewSkillSet(labels ...string) SkillSet {
	set := SkillSet{index: make(map[string]struct{}, len(labels))}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := set.index[label]; dup {
			continue
		}
		set.index[label] = struct{}{}
		set.labels = append(set.labels, label)
	}
	return set
}

// Contains reports whether the exact label is in the set.
func (s SkillSet) Contains(label string) bool {
	_, ok := s.index[strings.TrimSpace(label)]
	return ok
}

// AnyOverlap reports whether the two sets share at least one label
// (any-of semantics, not all-of).
func (s SkillSet) AnyOverlap(other SkillSet) bool {
	small, large := s, other
	if len(large.index) < len(small.index) {
		small, large = large, small
	}
	for label := range small.index {
		if _, ok := large.index[label]; ok {
			return true
		}
	}
	return false
}

// Labels returns the labels in insertion order.
func (s SkillSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of distinct labels.
func (s SkillSet) Len() int {
	return len(s.labels)
}
