package fixtures

import (
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
)

// ==========================================
// SKELETON CREW
// ==========================================

// skeletonRoles is the fixed fallback roster used when a call-sheet day has
// no crew data at all. Every slot is unassigned (nil name); the list exists
// so the renderer never receives an empty grid.
var skeletonRoles = []struct {
	Department crew.Code
	Roles      []string
}{
	{crew.CodeProduction, []string{"Executive Producer", "Producer", "Production Supervisor", "PA - Set"}},
	{crew.CodeCamera, []string{"Director of Photography", "1st AC", "2nd AC", "DIT"}},
	{crew.CodeSound, []string{"Sound Mixer", "Boom Operator"}},
	{crew.CodeGripElectric, []string{"Gaffer", "Key Grip", "Best Boy"}},
	{crew.CodeTalent, []string{"Talent 1", "Talent 2"}},
}

// DefaultDepartments returns the skeleton crew grouped by department. It
// builds a fresh slice on every call so no caller can mutate shared state.
func DefaultDepartments() []crew.Department {
	departments := make([]crew.Department, 0, len(skeletonRoles))
	for _, entry := range skeletonRoles {
		members := make([]crew.Member, 0, len(entry.Roles))
		for _, role := range entry.Roles {
			members = append(members, crew.Member{Role: role})
		}
		departments = append(departments, crew.Department{
			Code: entry.Department,
			Crew: members,
		})
	}
	return departments
}
