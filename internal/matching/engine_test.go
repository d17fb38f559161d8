package matching_test

import (
	"testing"

	"volunteer-hub-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(t *testing.T, skills []string, ranges ...string) matching.Profile {
	t.Helper()
	parsed := make([]matching.DateRange, 0, len(ranges))
	for _, s := range ranges {
		parsed = append(parsed, mustRange(t, s))
	}
	avail, err := matching.NewAvailabilitySetFromRanges(parsed)
	require.NoError(t, err)
	return matching.Profile{
		Skills:       matching.NewSkillSet(skills...),
		Availability: avail,
	}
}

func candidate(t *testing.T, skills []string, windows ...string) matching.Candidate {
	t.Helper()
	parsed := make([]matching.DateRange, 0, len(windows))
	for _, s := range windows {
		parsed = append(parsed, mustRange(t, s))
	}
	return matching.Candidate{
		RequiredSkills: matching.NewSkillSet(skills...),
		Windows:        parsed,
	}
}

func TestFindMatchesConjunctive(t *testing.T) {
	engine := matching.NewEngine()
	p := profile(t, []string{"First Aid"}, "2024-07-01 to 2024-07-10")

	candidates := []matching.Candidate{
		// skill and date both align
		candidate(t, []string{"First Aid"}, "2024-07-05 to 2024-07-06"),
		// skill mismatch, dates align
		candidate(t, []string{"Carpentry"}, "2024-07-05 to 2024-07-06"),
		// skill aligns, dates miss
		candidate(t, []string{"First Aid"}, "2024-08-01 to 2024-08-02"),
	}

	assert.Equal(t, []int{0}, engine.FindMatches(p, candidates))
}

func TestFindMatchesMultipleWindows(t *testing.T) {
	engine := matching.NewEngine()
	p := profile(t, []string{"Cooking"}, "2024-07-01 to 2024-07-03")

	// only the event's second window overlaps the availability
	c := candidate(t, []string{"Cooking", "Serving"},
		"2024-06-01 to 2024-06-02", "2024-07-02 to 2024-07-04")

	assert.True(t, engine.Matches(p, c))
}

func TestFindMatchesEmptyInputs(t *testing.T) {
	engine := matching.NewEngine()
	p := profile(t, []string{"First Aid"}, "2024-07-01 to 2024-07-10")

	// no candidates is an empty result, not an error
	assert.Empty(t, engine.FindMatches(p, nil))

	// volunteer with no skills matches nothing
	noSkills := profile(t, nil, "2024-07-01 to 2024-07-10")
	assert.Empty(t, engine.FindMatches(noSkills, []matching.Candidate{
		candidate(t, []string{"First Aid"}, "2024-07-05 to 2024-07-06"),
	}))

	// volunteer with no availability matches nothing
	noDates := matching.Profile{
		Skills:       matching.NewSkillSet("First Aid"),
		Availability: matching.NewAvailabilitySet(),
	}
	assert.Empty(t, engine.FindMatches(noDates, []matching.Candidate{
		candidate(t, []string{"First Aid"}, "2024-07-05 to 2024-07-06"),
	}))

	// nil availability is treated like empty, not a panic
	nilAvail := matching.Profile{Skills: matching.NewSkillSet("First Aid")}
	assert.False(t, engine.Matches(nilAvail, candidate(t, []string{"First Aid"}, "2024-07-05 to 2024-07-06")))
}

func TestFindMatchesPreservesOrder(t *testing.T) {
	engine := matching.NewEngine()
	p := profile(t, []string{"First Aid", "Cooking"}, "2024-07-01 to 2024-07-31")

	candidates := []matching.Candidate{
		candidate(t, []string{"Cooking"}, "2024-07-01 to 2024-07-02"),
		candidate(t, []string{"Welding"}, "2024-07-01 to 2024-07-02"),
		candidate(t, []string{"First Aid"}, "2024-07-20 to 2024-07-21"),
	}

	assert.Equal(t, []int{0, 2}, engine.FindMatches(p, candidates))
}
