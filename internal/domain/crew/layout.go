package crew

import "sort"

// Column is one side of the two-column printed crew grid. Rows is the
// running total of RowCount over its departments.
type Column struct {
	Departments []Department
	Rows        int
}

func (c *Column) append(d Department) {
	c.Departments = append(c.Departments, d)
	c.Rows += d.RowCount()
}

// anchoredCodes are pinned to the left column first, in this order,
// regardless of size. Printed call-sheet convention puts Production and
// Camera top-left.
var anchoredCodes = []Code{CodeProduction, CodeCamera}

func isAnchored(c Code) bool {
	for _, a := range anchoredCodes {
		if a == c {
			return true
		}
	}
	return false
}

// Balance partitions departments between the two display columns with a
// greedy heuristic: anchored departments go left first, the rest are taken
// in descending row-count order (vocabulary order breaks ties) and appended
// to whichever column is currently shorter, ties going left.
//
// The result is deliberately not an optimal bin packing. The greedy pass is
// deterministic and keeps the same input producing the same layout every
// run; the residual imbalance is bounded by the largest unanchored
// department.
func Balance(departments []Department) (left, right Column) {
	byCode := make(map[Code]Department, len(departments))
	var rest []Department
	for _, d := range departments {
		if isAnchored(d.Code) {
			byCode[d.Code] = d
			continue
		}
		rest = append(rest, d)
	}

	for _, code := range anchoredCodes {
		if d, ok := byCode[code]; ok {
			left.append(d)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		ri, rj := rest[i].RowCount(), rest[j].RowCount()
		if ri != rj {
			return ri > rj
		}
		return vocabularyRank(rest[i].Code) < vocabularyRank(rest[j].Code)
	})

	for _, d := range rest {
		if right.Rows < left.Rows {
			right.append(d)
		} else {
			left.append(d)
		}
	}
	return left, right
}
