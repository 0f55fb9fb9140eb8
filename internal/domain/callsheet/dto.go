package callsheet

import (
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/validator"
)

// CrewMemberInput is one extracted crew row as delivered by the upstream
// extraction layer. Every field except Role may be missing.
type CrewMemberInput struct {
	Role     string  `json:"role"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	CallTime *string `json:"call_time,omitempty"`
	Location *string `json:"location,omitempty"`
}

type DepartmentInput struct {
	Name string            `json:"name"`
	Crew []CrewMemberInput `json:"crew"`
}

// SynthesizeRequest is the per-day input snapshot from the extraction layer.
// All call-time fields are free-form strings; malformed values degrade to
// absent rather than failing the request.
type SynthesizeRequest struct {
	GeneralCrewCall string            `json:"general_crew_call"`
	ProductionCall  string            `json:"production_call"`
	BreakfastCall   string            `json:"breakfast_call"`
	TalentCall      string            `json:"talent_call"`
	Departments     []DepartmentInput `json:"departments"`
}

type UpdateCallSheetRequest struct {
	ID              string  `json:"-"`
	GeneralCrewCall *string `json:"general_crew_call"`
	ProductionCall  *string `json:"production_call"`
	BreakfastCall   *string `json:"breakfast_call"`
	TalentCall      *string `json:"talent_call"`
	Notes           *string `json:"notes"`
	Status          *string `json:"status"`
}

func (r *UpdateCallSheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "call sheet id is required",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: DRAFT, SENT, FINAL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CallTimeResponse struct {
	Value   string `json:"value"`
	Derived bool   `json:"derived"`
}

type CallTimesResponse struct {
	GeneralCrewCall CallTimeResponse `json:"general_crew_call"`
	ProductionCall  CallTimeResponse `json:"production_call"`
	BreakfastCall   CallTimeResponse `json:"breakfast_call"`
}

type CrewMemberResponse struct {
	Role     string  `json:"role"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	CallTime *string `json:"call_time,omitempty"`
	Location *string `json:"location,omitempty"`
}

type DepartmentResponse struct {
	Name string               `json:"name"`
	Rows int                  `json:"rows"`
	Crew []CrewMemberResponse `json:"crew"`
}

// DaySheetResponse is the synthesized day output consumed by the renderer.
// CallTimes is null when no anchor could be resolved; the renderer then
// shows "TBD" with no derived badge.
type DaySheetResponse struct {
	CallTimes   *CallTimesResponse   `json:"call_times"`
	TalentCall  string               `json:"talent_call"`
	LeftColumn  []DepartmentResponse `json:"left_column"`
	RightColumn []DepartmentResponse `json:"right_column"`
}

func NewDaySheetResponse(sheet DaySheet) DaySheetResponse {
	resp := DaySheetResponse{
		TalentCall:  sheet.TalentCall,
		LeftColumn:  newColumnResponse(sheet.LeftColumn),
		RightColumn: newColumnResponse(sheet.RightColumn),
	}
	if set := sheet.CallTimes; set != nil {
		resp.CallTimes = &CallTimesResponse{
			GeneralCrewCall: newCallTimeResponse(set.GeneralCrewCall),
			ProductionCall:  newCallTimeResponse(set.ProductionCall),
			BreakfastCall:   newCallTimeResponse(set.BreakfastCall),
		}
	}
	return resp
}

func newCallTimeResponse(ct CallTime) CallTimeResponse {
	return CallTimeResponse{Value: ct.Value.String(), Derived: ct.Derived}
}

func newColumnResponse(col crew.Column) []DepartmentResponse {
	departments := make([]DepartmentResponse, 0, len(col.Departments))
	for _, d := range col.Departments {
		members := make([]CrewMemberResponse, 0, len(d.Crew))
		for _, m := range d.Crew {
			members = append(members, CrewMemberResponse{
				Role:     m.Role,
				Name:     m.Name,
				Phone:    m.Phone,
				Email:    m.Email,
				CallTime: m.CallTime,
				Location: m.Location,
			})
		}
		departments = append(departments, DepartmentResponse{
			Name: d.Code.Display(),
			Rows: d.RowCount(),
			Crew: members,
		})
	}
	return departments
}

type CallSheetResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	DayNumber int    `json:"day_number"`
	ShootDate string `json:"shoot_date"`
	Status    string `json:"status"`

	GeneralCrewCall        string `json:"general_crew_call"`
	GeneralCrewCallDerived bool   `json:"general_crew_call_derived"`
	ProductionCall         string `json:"production_call"`
	ProductionCallDerived  bool   `json:"production_call_derived"`
	BreakfastCall          string `json:"breakfast_call"`
	BreakfastCallDerived   bool   `json:"breakfast_call_derived"`
	TalentCall             string `json:"talent_call"`

	WeatherHigh     *string `json:"weather_high,omitempty"`
	WeatherLow      *string `json:"weather_low,omitempty"`
	WeatherSummary  *string `json:"weather_summary,omitempty"`
	Sunrise         *string `json:"sunrise,omitempty"`
	Sunset          *string `json:"sunset,omitempty"`
	NearestHospital *string `json:"nearest_hospital,omitempty"`
	HospitalAddress *string `json:"hospital_address,omitempty"`

	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type RSVPResponse struct {
	ID                   string  `json:"id"`
	CallSheetID          string  `json:"call_sheet_id"`
	CrewMemberID         string  `json:"crew_member_id"`
	Status               string  `json:"status"`
	SentAt               *string `json:"sent_at,omitempty"`
	ViewedAt             *string `json:"viewed_at,omitempty"`
	ConfirmedAt          *string `json:"confirmed_at,omitempty"`
	PersonalizedCallTime *string `json:"personalized_call_time,omitempty"`
	PersonalizedNotes    *string `json:"personalized_notes,omitempty"`
}

type SendCallSheetResponse struct {
	CallSheetID    string   `json:"call_sheet_id"`
	SentCount      int      `json:"sent_count"`
	SkippedNoEmail []string `json:"skipped_no_email,omitempty"`
}
