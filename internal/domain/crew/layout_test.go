package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dept(code Code, size int) Department {
	return Department{Code: code, Crew: make([]Member, size)}
}

func columnCodes(c Column) []Code {
	codes := make([]Code, 0, len(c.Departments))
	for _, d := range c.Departments {
		codes = append(codes, d.Code)
	}
	return codes
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestBalance_AnchorsAlwaysLeft(t *testing.T) {
	t.Parallel()

	// Production and Camera stay left even when they dwarf everything else.
	left, right := Balance([]Department{
		dept(CodeSound, 2),
		dept(CodeProduction, 12),
		dept(CodeTalent, 1),
		dept(CodeCamera, 9),
	})

	require.GreaterOrEqual(t, len(left.Departments), 2)
	assert.Equal(t, CodeProduction, left.Departments[0].Code)
	assert.Equal(t, CodeCamera, left.Departments[1].Code)
	assert.NotContains(t, columnCodes(right), CodeProduction)
	assert.NotContains(t, columnCodes(right), CodeCamera)
}

func TestBalance_GreedyFill(t *testing.T) {
	t.Parallel()

	left, right := Balance([]Department{
		dept(CodeProduction, 3),
		dept(CodeCamera, 8),
		dept(CodeGripElectric, 6),
		dept(CodeSound, 2),
		dept(CodeTalent, 1),
	})

	assert.Equal(t, []Code{CodeProduction, CodeCamera}, columnCodes(left))
	assert.Equal(t, 11, left.Rows)
	assert.Equal(t, []Code{CodeGripElectric, CodeSound, CodeTalent}, columnCodes(right))
	assert.Equal(t, 9, right.Rows)
}

// Imbalance never exceeds the largest unanchored department.
func TestBalance_BoundProperty(t *testing.T) {
	t.Parallel()

	tests := [][]Department{
		{dept(CodeProduction, 3), dept(CodeCamera, 8), dept(CodeGripElectric, 6), dept(CodeSound, 2), dept(CodeTalent, 1)},
		{dept(CodeSound, 5), dept(CodeArt, 5), dept(CodeWardrobe, 5), dept(CodeTalent, 5)},
		{dept(CodeGripElectric, 20), dept(CodeSound, 1)},
		{dept(CodeProduction, 1), dept(CodeOther, 7)},
		{dept(CodeSound, 0), dept(CodeArt, 0), dept(CodeWardrobe, 0)},
		{dept(CodeTalent, 3)},
	}

	for _, departments := range tests {
		largest := 0
		for _, d := range departments {
			if !isAnchored(d.Code) && d.RowCount() > largest {
				largest = d.RowCount()
			}
		}

		left, right := Balance(departments)
		assert.LessOrEqual(t, absDiff(left.Rows, right.Rows), maxInt(largest, leftOnlyImbalance(departments)),
			"departments %v", columnCodes(Column{Departments: departments}))
	}
}

// With only anchored departments the whole roster sits left; the bound then
// degenerates to the anchored total.
func leftOnlyImbalance(departments []Department) int {
	total := 0
	unanchored := false
	for _, d := range departments {
		if isAnchored(d.Code) {
			total += d.RowCount()
		} else {
			unanchored = true
		}
	}
	if unanchored {
		return 0
	}
	return total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestBalance_TieGoesLeft(t *testing.T) {
	t.Parallel()

	// No anchors; first department lands left on the 0-0 tie.
	left, right := Balance([]Department{
		dept(CodeSound, 2),
		dept(CodeArt, 2),
	})

	assert.Equal(t, []Code{CodeSound}, columnCodes(left))
	assert.Equal(t, []Code{CodeArt}, columnCodes(right))
}

func TestBalance_EqualSizesTieBrokenByVocabularyOrder(t *testing.T) {
	t.Parallel()

	// All size 2; sorted order must follow the vocabulary, not input order.
	left, right := Balance([]Department{
		dept(CodeTalent, 2),
		dept(CodeSound, 2),
		dept(CodeWardrobe, 2),
		dept(CodeArt, 2),
	})

	assert.Equal(t, []Code{CodeSound, CodeWardrobe}, columnCodes(left))
	assert.Equal(t, []Code{CodeArt, CodeTalent}, columnCodes(right))
}

func TestBalance_EmptyDepartmentsStillCountHeaderRow(t *testing.T) {
	t.Parallel()

	left, right := Balance([]Department{
		dept(CodeSound, 0),
		dept(CodeArt, 0),
		dept(CodeWardrobe, 0),
		dept(CodeTalent, 0),
	})

	assert.Equal(t, 2, left.Rows)
	assert.Equal(t, 2, right.Rows)
}

func TestBalance_NoDepartments(t *testing.T) {
	t.Parallel()

	left, right := Balance(nil)
	assert.Empty(t, left.Departments)
	assert.Empty(t, right.Departments)
	assert.Zero(t, left.Rows)
	assert.Zero(t, right.Rows)
}

func TestBalance_Deterministic(t *testing.T) {
	t.Parallel()

	input := []Department{
		dept(CodeSound, 3),
		dept(CodeProduction, 2),
		dept(CodeTalent, 3),
		dept(CodeCatering, 1),
	}

	firstLeft, firstRight := Balance(input)
	for i := 0; i < 10; i++ {
		left, right := Balance(input)
		assert.Equal(t, columnCodes(firstLeft), columnCodes(left))
		assert.Equal(t, columnCodes(firstRight), columnCodes(right))
	}
}
