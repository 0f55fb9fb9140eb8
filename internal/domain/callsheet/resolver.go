package callsheet

// Fixed industry offsets, in minutes before general crew call.
const (
	productionCallLead = 60
	breakfastCallLead  = 30
)

// CallTime is one resolved call-time slot. Derived is false only when the
// value is the caller's own parsed input for that slot; a derived value that
// happens to coincide numerically with a supplied-but-overridden input still
// reports Derived true.
type CallTime struct {
	Value   TimeOfDay
	Derived bool
}

// CallTimeSet is the fully resolved set of the three anchored call times.
// It is constructed wholesale by Resolve and never mutated; a new resolution
// replaces the previous set.
type CallTimeSet struct {
	GeneralCrewCall CallTime
	ProductionCall  CallTime
	BreakfastCall   CallTime
}

// Resolve derives a complete CallTimeSet from whatever subset of the three
// call-time strings is known. Anchor priority is general crew call, then
// production call, then breakfast call; the chosen anchor is converted to
// the canonical crew-call minute (production call runs 60 minutes before
// crew call, breakfast ready-to-shoot 30 minutes before), and the other two
// slots are always recomputed from it, wrapping across midnight.
//
// Malformed or empty inputs are treated as absent, never as errors. With no
// anchor at all Resolve returns nil and every field renders as "TBD" with no
// derived indicator. Talent call is not part of this derivation.
func Resolve(generalCrewCall, productionCall, breakfastCall string) *CallTimeSet {
	general := ParseTimeOfDay(generalCrewCall)
	production := ParseTimeOfDay(productionCall)
	breakfast := ParseTimeOfDay(breakfastCall)

	var crewCall TimeOfDay
	switch {
	case general != nil:
		crewCall = *general
	case production != nil:
		crewCall = production.Add(productionCallLead)
	case breakfast != nil:
		crewCall = breakfast.Add(breakfastCallLead)
	default:
		return nil
	}

	set := &CallTimeSet{
		GeneralCrewCall: resolveSlot(crewCall, general),
		ProductionCall:  resolveSlot(crewCall.Add(-productionCallLead), production),
		BreakfastCall:   resolveSlot(crewCall.Add(-breakfastCallLead), breakfast),
	}
	return set
}

// resolveSlot marks a slot authoritative only when the caller supplied it
// and the supplied value survived resolution. At most one supplied value can
// be inconsistent with the anchor; it is overwritten with the derived value
// and flagged Derived.
func resolveSlot(value TimeOfDay, supplied *TimeOfDay) CallTime {
	return CallTime{
		Value:   value,
		Derived: supplied == nil || *supplied != value,
	}
}
