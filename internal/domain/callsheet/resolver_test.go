package callsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FromGeneralCrewCall(t *testing.T) {
	t.Parallel()

	set := Resolve("7:00 AM", "", "")
	require.NotNil(t, set)

	assert.Equal(t, minutes(7, 0), set.GeneralCrewCall.Value)
	assert.False(t, set.GeneralCrewCall.Derived)
	assert.Equal(t, minutes(6, 0), set.ProductionCall.Value)
	assert.True(t, set.ProductionCall.Derived)
	assert.Equal(t, minutes(6, 30), set.BreakfastCall.Value)
	assert.True(t, set.BreakfastCall.Derived)
}

func TestResolve_FromProductionCall(t *testing.T) {
	t.Parallel()

	set := Resolve("", "6:00 AM", "")
	require.NotNil(t, set)

	assert.Equal(t, minutes(7, 0), set.GeneralCrewCall.Value)
	assert.True(t, set.GeneralCrewCall.Derived)
	assert.Equal(t, minutes(6, 0), set.ProductionCall.Value)
	assert.False(t, set.ProductionCall.Derived)
	assert.Equal(t, minutes(6, 30), set.BreakfastCall.Value)
	assert.True(t, set.BreakfastCall.Derived)
}

func TestResolve_FromBreakfastCall(t *testing.T) {
	t.Parallel()

	set := Resolve("", "", "6:30 AM")
	require.NotNil(t, set)

	assert.Equal(t, minutes(7, 0), set.GeneralCrewCall.Value)
	assert.True(t, set.GeneralCrewCall.Derived)
	assert.Equal(t, minutes(6, 0), set.ProductionCall.Value)
	assert.True(t, set.ProductionCall.Derived)
	assert.Equal(t, minutes(6, 30), set.BreakfastCall.Value)
	assert.False(t, set.BreakfastCall.Derived)
}

func TestResolve_GeneralCrewCallWins(t *testing.T) {
	t.Parallel()

	// Production call disagrees with the anchor; it is overwritten and
	// flagged derived.
	set := Resolve("8:00 AM", "6:00 AM", "")
	require.NotNil(t, set)

	assert.Equal(t, minutes(8, 0), set.GeneralCrewCall.Value)
	assert.False(t, set.GeneralCrewCall.Derived)
	assert.Equal(t, minutes(7, 0), set.ProductionCall.Value)
	assert.True(t, set.ProductionCall.Derived)
	assert.Equal(t, minutes(7, 30), set.BreakfastCall.Value)
	assert.True(t, set.BreakfastCall.Derived)
}

func TestResolve_ConsistentInputsAllAuthoritative(t *testing.T) {
	t.Parallel()

	set := Resolve("7:00 AM", "6:00 AM", "6:30 AM")
	require.NotNil(t, set)

	assert.False(t, set.GeneralCrewCall.Derived)
	assert.False(t, set.ProductionCall.Derived)
	assert.False(t, set.BreakfastCall.Derived)
}

// Feeding a resolution's own formatted output back in reproduces the same
// set with every slot authoritative.
func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	first := Resolve("", "11:45 AM", "")
	require.NotNil(t, first)

	second := Resolve(
		first.GeneralCrewCall.Value.String(),
		first.ProductionCall.Value.String(),
		first.BreakfastCall.Value.String(),
	)
	require.NotNil(t, second)

	assert.Equal(t, first.GeneralCrewCall.Value, second.GeneralCrewCall.Value)
	assert.Equal(t, first.ProductionCall.Value, second.ProductionCall.Value)
	assert.Equal(t, first.BreakfastCall.Value, second.BreakfastCall.Value)
	assert.False(t, second.GeneralCrewCall.Derived)
	assert.False(t, second.ProductionCall.Derived)
	assert.False(t, second.BreakfastCall.Derived)
}

func TestResolve_WrapsAcrossMidnight(t *testing.T) {
	t.Parallel()

	// Overnight shoot: crew call just after midnight pushes the earlier
	// calls back into the previous evening.
	set := Resolve("12:15 AM", "", "")
	require.NotNil(t, set)

	assert.Equal(t, "12:15 AM", set.GeneralCrewCall.Value.String())
	assert.Equal(t, "11:15 PM", set.ProductionCall.Value.String())
	assert.Equal(t, "11:45 PM", set.BreakfastCall.Value.String())
}

func TestResolve_NoAnchor(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Resolve("", "", ""))
	assert.Nil(t, Resolve("TBD", "TBD", "TBD"))
	assert.Nil(t, Resolve("O/C", "sunrise", "n/a"))
}

func TestResolve_MalformedInputTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	// The unusable production call does not poison the anchor.
	set := Resolve("7:00 AM", "garbage", "")
	require.NotNil(t, set)

	assert.Equal(t, minutes(7, 0), set.GeneralCrewCall.Value)
	assert.False(t, set.GeneralCrewCall.Derived)
	assert.Equal(t, minutes(6, 0), set.ProductionCall.Value)
	assert.True(t, set.ProductionCall.Derived)
}
