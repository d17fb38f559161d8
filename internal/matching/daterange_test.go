package matching_test

import (
	"testing"
	"time"

	"volunteer-hub-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, s string) matching.DateRange {
	t.Helper()
	r, err := matching.ParseRange(s)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	r, err := matching.NewDateRange(date("2024-06-01"), date("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, date("2024-06-01"), r.Start)
	assert.Equal(t, date("2024-06-05"), r.End)

	// single-day range is valid
	_, err = matching.NewDateRange(date("2024-06-01"), date("2024-06-01"))
	assert.NoError(t, err)

	// inverted range is rejected
	_, err = matching.NewDateRange(date("2024-06-10"), date("2024-06-01"))
	assert.ErrorIs(t, err, matching.ErrInvalidRange)
}

func TestNewDateRangeTruncatesTimeOfDay(t *testing.T) {
	late := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC)
	r, err := matching.NewDateRange(late, early)
	require.NoError(t, err)
	assert.Equal(t, date("2024-06-01"), r.Start)
	assert.Equal(t, date("2024-06-01"), r.End)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "canonical", input: "2024-06-01 to 2024-06-05", want: "2024-06-01 to 2024-06-05"},
		{name: "surrounding whitespace", input: " 2024-06-01  to  2024-06-05 ", want: "2024-06-01 to 2024-06-05"},
		{name: "missing separator", input: "2024-06-01 - 2024-06-05", wantErr: matching.ErrMalformedRange},
		{name: "bad start date", input: "June 1 to 2024-06-05", wantErr: matching.ErrMalformedRange},
		{name: "bad end date", input: "2024-06-01 to someday", wantErr: matching.ErrMalformedRange},
		{name: "empty string", input: "", wantErr: matching.ErrMalformedRange},
		{name: "inverted", input: "2024-06-10 to 2024-06-01", wantErr: matching.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := matching.ParseRange(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestParseRangesFailsOnFirstBadEntry(t *testing.T) {
	_, err := matching.ParseRanges([]string{"2024-06-01 to 2024-06-05", "nonsense"})
	assert.ErrorIs(t, err, matching.ErrMalformedRange)

	ranges, err := matching.ParseRanges([]string{"2024-06-01 to 2024-06-05", "2024-07-01 to 2024-07-02"})
	require.NoError(t, err)
	assert.Len(t, ranges, 2)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "contained", a: "2024-06-01 to 2024-06-10", b: "2024-06-03 to 2024-06-05", want: true},
		{name: "partial", a: "2024-06-01 to 2024-06-05", b: "2024-06-04 to 2024-06-10", want: true},
		{name: "touching endpoints", a: "2024-06-01 to 2024-06-05", b: "2024-06-05 to 2024-06-10", want: true},
		{name: "disjoint", a: "2024-06-01 to 2024-06-05", b: "2024-06-06 to 2024-06-10", want: false},
		{name: "single day inside", a: "2024-06-03 to 2024-06-03", b: "2024-06-01 to 2024-06-05", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a)
			b := mustRange(t, tt.b)
			assert.Equal(t, tt.want, a.Overlaps(b))
			// symmetry
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestOverlapsReflexive(t *testing.T) {
	r := mustRange(t, "2024-06-01 to 2024-06-05")
	assert.True(t, r.Overlaps(r))

	single := mustRange(t, "2024-06-01 to 2024-06-01")
	assert.True(t, single.Overlaps(single))
}

func TestStringRoundTrip(t *testing.T) {
	r := mustRange(t, "2024-06-01 to 2024-06-05")
	again, err := matching.ParseRange(r.String())
	require.NoError(t, err)
	assert.True(t, r.Equal(again))
}
