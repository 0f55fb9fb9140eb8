package callsheet

import (
	"testing"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func crewRows(n int) []callsheet.CrewMemberInput {
	rows := make([]callsheet.CrewMemberInput, n)
	for i := range rows {
		rows[i] = callsheet.CrewMemberInput{Role: "Crew"}
	}
	return rows
}

func allCodes(sheet callsheet.DaySheet) []crew.Code {
	var codes []crew.Code
	for _, d := range sheet.LeftColumn.Departments {
		codes = append(codes, d.Code)
	}
	for _, d := range sheet.RightColumn.Departments {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestSynthesizeDay_FullSnapshot(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{
		GeneralCrewCall: "7:00 AM",
		TalentCall:      "9:00 AM",
		Departments: []callsheet.DepartmentInput{
			{Name: "Production", Crew: crewRows(3)},
			{Name: "Camera", Crew: crewRows(8)},
			{Name: "Grip", Crew: crewRows(6)},
			{Name: "Sound", Crew: crewRows(2)},
			{Name: "Talent", Crew: crewRows(1)},
		},
	})

	require.NotNil(t, sheet.CallTimes)
	assert.Equal(t, "7:00 AM", sheet.CallTimes.GeneralCrewCall.Value.String())
	assert.False(t, sheet.CallTimes.GeneralCrewCall.Derived)
	assert.Equal(t, "6:00 AM", sheet.CallTimes.ProductionCall.Value.String())
	assert.True(t, sheet.CallTimes.ProductionCall.Derived)
	assert.Equal(t, "9:00 AM", sheet.TalentCall)

	assert.Equal(t, 11, sheet.LeftColumn.Rows)
	assert.Equal(t, 9, sheet.RightColumn.Rows)
}

func TestSynthesizeDay_EmptyRosterGetsSkeletonCrew(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{})

	codes := allCodes(sheet)
	assert.NotEmpty(t, codes)
	assert.Contains(t, codes, crew.CodeProduction)
	assert.Contains(t, codes, crew.CodeCamera)
	assert.Contains(t, codes, crew.CodeTalent)

	for _, d := range append(sheet.LeftColumn.Departments, sheet.RightColumn.Departments...) {
		for _, m := range d.Crew {
			assert.Nil(t, m.Name)
		}
	}

	assert.Nil(t, sheet.CallTimes)
	assert.Equal(t, "TBD", sheet.TalentCall)
}

// Departments that exist but have zero crew do not trigger the fallback by
// themselves; only a roster with zero total crew does.
func TestSynthesizeDay_PartialRosterNeverReplaced(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{
		Departments: []callsheet.DepartmentInput{
			{Name: "Sound", Crew: []callsheet.CrewMemberInput{
				{Role: "Sound Mixer", Name: strPtr("Alex Reyes")},
			}},
			{Name: "Wardrobe"},
		},
	})

	codes := allCodes(sheet)
	assert.ElementsMatch(t, []crew.Code{crew.CodeSound, crew.CodeWardrobe}, codes)
	assert.NotContains(t, codes, crew.CodeGripElectric)
}

func TestSynthesizeDay_EmptyDepartmentsOnlyTriggersFallback(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{
		Departments: []callsheet.DepartmentInput{
			{Name: "Sound"},
			{Name: "Art"},
		},
	})

	// Zero crew in total, so the skeleton replaces the empty shells.
	codes := allCodes(sheet)
	assert.Contains(t, codes, crew.CodeProduction)
	assert.Contains(t, codes, crew.CodeCamera)
}

func TestSynthesizeDay_MergesDepartmentsByNormalizedCode(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{
		Departments: []callsheet.DepartmentInput{
			{Name: "Hair", Crew: []callsheet.CrewMemberInput{{Role: "Hair Stylist", Name: strPtr("Sam Okafor")}}},
			{Name: "Makeup", Crew: []callsheet.CrewMemberInput{{Role: "Makeup Artist", Name: strPtr("Priya Nair")}}},
		},
	})

	codes := allCodes(sheet)
	assert.Equal(t, []crew.Code{crew.CodeHairMakeup}, codes)

	merged := append(sheet.LeftColumn.Departments, sheet.RightColumn.Departments...)[0]
	require.Len(t, merged.Crew, 2)
	assert.Equal(t, "Hair Stylist", merged.Crew[0].Role)
	assert.Equal(t, "Makeup Artist", merged.Crew[1].Role)
}

func TestSynthesizeDay_TalentCallVerbatim(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()

	tests := []struct {
		input string
		want  string
	}{
		{"9:00 AM", "9:00 AM"},
		{"O/C", "O/C"},
		{"  after lunch  ", "after lunch"},
		{"", "TBD"},
		{"tbd", "TBD"},
	}

	for _, tt := range tests {
		sheet := s.SynthesizeDay(callsheet.SynthesizeRequest{TalentCall: tt.input})
		assert.Equal(t, tt.want, sheet.TalentCall, "input %q", tt.input)
	}
}

func TestSynthesizeDay_DeterministicAcrossInputOrder(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer()
	forward := []callsheet.DepartmentInput{
		{Name: "Sound", Crew: crewRows(2)},
		{Name: "Talent", Crew: crewRows(3)},
		{Name: "Catering", Crew: crewRows(1)},
	}
	reversed := []callsheet.DepartmentInput{
		{Name: "Catering", Crew: crewRows(1)},
		{Name: "Talent", Crew: crewRows(3)},
		{Name: "Sound", Crew: crewRows(2)},
	}

	a := s.SynthesizeDay(callsheet.SynthesizeRequest{Departments: forward})
	b := s.SynthesizeDay(callsheet.SynthesizeRequest{Departments: reversed})

	assert.Equal(t, allCodes(a), allCodes(b))
	assert.Equal(t, a.LeftColumn.Rows, b.LeftColumn.Rows)
	assert.Equal(t, a.RightColumn.Rows, b.RightColumn.Rows)
}
