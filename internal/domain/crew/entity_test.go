package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ExactTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Code
	}{
		{"Production", CodeProduction},
		{"PRODUCTION", CodeProduction},
		{"  production  ", CodeProduction},
		{"Prouction", CodeProduction},
		{"MGMT", CodeProduction},
		{"Camera", CodeCamera},
		{"Stills", CodeCamera},
		{"Audio", CodeSound},
		{"G&E", CodeGripElectric},
		{"Lighting", CodeGripElectric},
		{"HMU", CodeHairMakeup},
		{"Vanities", CodeHairMakeup},
		{"Transpo", CodeTransportation},
		{"Craft Services", CodeCatering},
		{"Post", CodePostProduction},
		{"Talent", CodeTalent},
		{"Medical", CodeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalize_TokenFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Code
	}{
		{"Camera Department", CodeCamera},
		{"Prouction Manager", CodeProduction},
		{"Grip Crew", CodeGripElectric},
		{"Location Scouts", CodeLocations},
		{"Catering / Craft", CodeCatering},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalize_UnknownAndEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CodeOther, Normalize(""))
	assert.Equal(t, CodeOther, Normalize("   "))
	assert.Equal(t, CodeOther, Normalize("Accounting"))
	assert.Equal(t, CodeOther, Normalize("VFX"))
}

func TestCode_Display(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GRIP & ELECTRIC", CodeGripElectric.Display())
	assert.Equal(t, "HAIR & MAKEUP", CodeHairMakeup.Display())
	assert.Equal(t, "CAMERA DEPT", CodeCamera.Display())
	assert.Equal(t, "OTHER", CodeOther.Display())
}

func TestMember_Assigned(t *testing.T) {
	t.Parallel()

	name := "Dana Whitfield"
	blank := "   "
	assert.True(t, Member{Role: "Gaffer", Name: &name}.Assigned())
	assert.False(t, Member{Role: "Gaffer"}.Assigned())
	assert.False(t, Member{Role: "Gaffer", Name: &blank}.Assigned())
}

func TestDepartment_RowCount(t *testing.T) {
	t.Parallel()

	// An empty department still renders its header row.
	assert.Equal(t, 1, Department{Code: CodeSound}.RowCount())
	assert.Equal(t, 3, Department{Code: CodeSound, Crew: make([]Member, 3)}.RowCount())
}
