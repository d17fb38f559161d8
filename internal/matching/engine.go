package matching

// Profile is the volunteer side of a match: possessed skills and free
// date windows.
type Profile struct {
	Skills       SkillSet
	Availability *AvailabilitySet
}

// Candidate is the event side of a match: required skills and scheduled
// date windows.
type Candidate struct {
	RequiredSkills SkillSet
	Windows        []DateRange
}

// Engine filters candidate events against a volunteer profile. A candidate
// matches only when the skill sets intersect AND at least one of its windows
// overlaps the volunteer's availability; the two conditions are conjunctive.
type Engine struct{}

// NewEngine creates a matching engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Matches evaluates a single candidate against the profile. A profile with
// no skills or no availability vacuously matches nothing.
func (e *Engine) Matches(p Profile, c Candidate) bool {
	if p.Skills.Len() == 0 || p.Availability == nil || p.Availability.Len() == 0 {
		return false
	}
	if !p.Skills.AnyOverlap(c.RequiredSkills) {
		return false
	}
	return p.Availability.IntersectsAny(c.Windows)
}

// FindMatches returns the indexes of the matching candidates, in input
// order. Every call re-evaluates against the candidates it is given; the
// engine holds no state and caches nothing. An empty candidate list yields
// an empty result, not an error.
func (e *Engine) FindMatches(p Profile, candidates []Candidate) []int {
	matched := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if e.Matches(p, c) {
			matched = append(matched, i)
		}
	}
	return matched
}
