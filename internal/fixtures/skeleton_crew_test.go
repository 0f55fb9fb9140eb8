package fixtures

import (
	"testing"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDepartments_NeverEmptyAllUnassigned(t *testing.T) {
	t.Parallel()

	departments := DefaultDepartments()
	require.NotEmpty(t, departments)

	for _, d := range departments {
		assert.NotEmpty(t, d.Crew, "department %s", d.Code)
		for _, m := range d.Crew {
			assert.Nil(t, m.Name, "role %s in %s", m.Role, d.Code)
			assert.NotEmpty(t, m.Role)
		}
	}
}

func TestDefaultDepartments_CanonicalShape(t *testing.T) {
	t.Parallel()

	departments := DefaultDepartments()

	byCode := make(map[crew.Code][]crew.Member)
	for _, d := range departments {
		byCode[d.Code] = d.Crew
	}

	require.Len(t, byCode[crew.CodeProduction], 4)
	require.Len(t, byCode[crew.CodeCamera], 4)
	require.Len(t, byCode[crew.CodeSound], 2)
	require.Len(t, byCode[crew.CodeGripElectric], 3)
	require.Len(t, byCode[crew.CodeTalent], 2)

	assert.Equal(t, "Director of Photography", byCode[crew.CodeCamera][0].Role)
	assert.Equal(t, "Sound Mixer", byCode[crew.CodeSound][0].Role)
}

func TestDefaultDepartments_MutationIsolated(t *testing.T) {
	t.Parallel()

	first := DefaultDepartments()
	name := "scribbled over"
	first[0].Crew[0].Name = &name
	first[0].Crew[0].Role = "changed"

	second := DefaultDepartments()
	assert.Nil(t, second[0].Crew[0].Name)
	assert.Equal(t, "Executive Producer", second[0].Crew[0].Role)
}
