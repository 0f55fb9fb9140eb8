package callsheet

import (
	"strings"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/fixtures"
)

// Synthesizer runs the per-day synthesis pipeline: skeleton-crew fallback,
// department grouping, column balancing and call-time resolution. It holds
// no state; every method is a pure function over its arguments, so one
// Synthesizer can serve any number of days concurrently.
type Synthesizer struct {
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// SynthesizeDay produces the complete, internally consistent day sheet for
// one shoot day. It is total: any input, including a fully empty snapshot,
// yields a renderable result.
func (s *Synthesizer) SynthesizeDay(req callsheet.SynthesizeRequest) callsheet.DaySheet {
	departments := s.groupDepartments(req.Departments)
	if totalCrew(departments) == 0 {
		departments = fixtures.DefaultDepartments()
	}
	left, right := crew.Balance(departments)

	return callsheet.DaySheet{
		CallTimes:   callsheet.Resolve(req.GeneralCrewCall, req.ProductionCall, req.BreakfastCall),
		TalentCall:  talentCallValue(req.TalentCall),
		LeftColumn:  left,
		RightColumn: right,
	}
}

// groupDepartments normalizes incoming department names through the
// controlled vocabulary and merges inputs that land on the same code,
// preserving crew order. Output follows vocabulary order, which keeps the
// balancer's tie-breaks independent of upstream ordering.
func (s *Synthesizer) groupDepartments(inputs []callsheet.DepartmentInput) []crew.Department {
	byCode := make(map[crew.Code][]crew.Member)
	seen := make(map[crew.Code]bool)
	for _, input := range inputs {
		code := crew.Normalize(input.Name)
		seen[code] = true
		for _, m := range input.Crew {
			byCode[code] = append(byCode[code], crew.Member{
				Role:     m.Role,
				Name:     m.Name,
				Phone:    m.Phone,
				Email:    m.Email,
				CallTime: m.CallTime,
				Location: m.Location,
			})
		}
	}

	var departments []crew.Department
	for _, code := range crew.CodeValues {
		if seen[code] {
			departments = append(departments, crew.Department{Code: code, Crew: byCode[code]})
		}
	}
	return departments
}

func totalCrew(departments []crew.Department) int {
	total := 0
	for _, d := range departments {
		total += len(d.Crew)
	}
	return total
}

// talentCallValue passes the supplied talent call through verbatim or
// renders "TBD". Talent call is never inferred from the crew-call anchor.
func talentCallValue(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "TBD") {
		return "TBD"
	}
	return trimmed
}
