package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.calendrical.net/calendrical"
)

func TestSessionAssign(t *testing.T) {
	s := NewSession(calendrical.Strict)

	out, err := s.Exec("Year=2008 MonthOfYear=6")
	require.NoError(t, err)
	assert.Equal(t, "{Year=2008, MonthOfYear=6}", out)

	// Later assignments accumulate, and re-assignment overwrites.
	out, err = s.Exec("DayOfMonth=30 MonthOfYear=7")
	require.NoError(t, err)
	assert.Equal(t, "{Year=2008, MonthOfYear=7, DayOfMonth=30}", out)

	want := calendrical.NewFields(
		calendrical.FieldValue{Rule: calendrical.Year, Value: 2008},
		calendrical.FieldValue{Rule: calendrical.MonthOfYear, Value: 7},
		calendrical.FieldValue{Rule: calendrical.DayOfMonth, Value: 30},
	)
	assert.True(t, s.Fields().Equal(want))
}

func TestSessionAssignErrors(t *testing.T) {
	s := NewSession(calendrical.Strict)

	_, err := s.Exec("Year")
	assert.ErrorContains(t, err, "expected Name=value")

	_, err = s.Exec("Year=twenty")
	assert.ErrorContains(t, err, "invalid value")

	// Misspelled rule names get a suggestion from the registry.
	_, err = s.Exec("MinuteOfHuor=30")
	assert.ErrorContains(t, err, "did you mean MinuteOfHour?")

	// A failed line must not leave a partial assignment behind.
	_, err = s.Exec("Year=2008 Bogus=1")
	require.Error(t, err)
	assert.Equal(t, 0, s.Fields().Len())
}

func TestSessionMerge(t *testing.T) {
	s := NewSession(calendrical.Strict)
	_, err := s.Exec("Year=2008 MonthOfYear=6 DayOfMonth=30 HourOfDay=11 MinuteOfHour=30")
	require.NoError(t, err)

	out, err := s.Exec(":merge")
	require.NoError(t, err)
	assert.Contains(t, out, "date:   2008-06-30")
	assert.Contains(t, out, "time:   11:30")
	assert.NotContains(t, out, "fields:")

	// The working set survives a merge.
	assert.Equal(t, 5, s.Fields().Len())

	out, err = s.Exec(":reset")
	require.NoError(t, err)
	assert.Equal(t, "fields cleared", out)
	assert.Equal(t, 0, s.Fields().Len())

	out, err = s.Exec(":merge")
	require.NoError(t, err)
	assert.Equal(t, "nothing to merge", out)
}

func TestSessionMergeErrors(t *testing.T) {
	s := NewSession(calendrical.Strict)
	_, err := s.Exec("Year=2008 MonthOfYear=6 DayOfMonth=31")
	require.NoError(t, err)

	_, err = s.Exec(":merge")
	var ife *calendrical.InvalidFieldError
	require.ErrorAs(t, err, &ife)
	assert.Same(t, calendrical.DayOfMonth, ife.Rule)

	// Switching to lenient normalizes the same set instead.
	_, err = s.Exec(":lenient")
	require.NoError(t, err)
	out, err := s.Exec(":merge")
	require.NoError(t, err)
	assert.Contains(t, out, "date:   2008-07-01")
}

func TestSessionContextCommands(t *testing.T) {
	s := NewSession(calendrical.Strict)

	out, err := s.Exec(":lenient")
	require.NoError(t, err)
	assert.Equal(t, "context: lenient", out)
	assert.False(t, s.Context().IsStrict())

	out, err = s.Exec(":discard")
	require.NoError(t, err)
	assert.Equal(t, "context: lenient discarding", out)
	assert.False(t, s.Context().IsCheckUnusedFields())

	out, err = s.Exec(":strict")
	require.NoError(t, err)
	assert.Equal(t, "context: strict discarding", out)

	out, err = s.Exec(":check")
	require.NoError(t, err)
	assert.Equal(t, "context: strict", out)

	_, err = s.Exec(":bogus")
	assert.ErrorContains(t, err, "unknown command :bogus")
}

func TestSessionRulesAndDump(t *testing.T) {
	s := NewSession(calendrical.Strict)

	out, err := s.Exec(":rules")
	require.NoError(t, err)
	names := strings.Split(out, "\n")
	assert.Contains(t, names, "Year")
	assert.Contains(t, names, "QuarterOfYear")

	_, err = s.Exec("Year=2008")
	require.NoError(t, err)
	out, err = s.Exec(":dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Session")

	out, err = s.Exec(":help")
	require.NoError(t, err)
	assert.Contains(t, out, ":merge")

	// Blank input is silently accepted.
	out, err = s.Exec("   ")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
