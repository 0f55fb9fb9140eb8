package callsheet

import (
	"time"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
)

type CallSheet struct {
	ID        string
	ProjectID string
	DayNumber int
	ShootDate time.Time
	Status    Status

	// Resolved call times, stored as display strings alongside their
	// derived flags. Nil means "TBD".
	GeneralCrewCall        *string
	GeneralCrewCallDerived bool
	ProductionCall         *string
	ProductionCallDerived  bool
	BreakfastCall          *string
	BreakfastCallDerived   bool
	TalentCall             *string

	// Enrichment results; any of these may be absent.
	WeatherHigh     *string
	WeatherLow      *string
	WeatherSummary  *string
	Sunrise         *string
	Sunset          *string
	NearestHospital *string
	HospitalAddress *string

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusDraft Status = "DRAFT"
	StatusSent  Status = "SENT"
	StatusFinal Status = "FINAL"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusSent),
	string(StatusFinal),
}

// RSVP tracks one crew member's response to a sent call sheet.
type RSVP struct {
	ID                   string
	CallSheetID          string
	CrewMemberID         string
	Token                string
	Status               RSVPStatus
	SentAt               *time.Time
	ViewedAt             *time.Time
	ConfirmedAt          *time.Time
	PersonalizedCallTime *string
	PersonalizedNotes    *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "PENDING"
	RSVPConfirmed RSVPStatus = "CONFIRMED"
	RSVPDeclined  RSVPStatus = "DECLINED"
)

// DaySheet is the synthesized, internally consistent representation of one
// shoot day's logistics: resolved call times plus the two balanced crew
// columns. It is what the rendering layer consumes.
type DaySheet struct {
	CallTimes   *CallTimeSet // nil when no anchor was resolvable
	TalentCall  string       // supplied value or "TBD", never inferred
	LeftColumn  crew.Column
	RightColumn crew.Column
}
