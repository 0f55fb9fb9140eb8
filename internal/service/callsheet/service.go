package callsheet

import (
	"context"
	"fmt"
	"time"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/project"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/email"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/validator"
	"github.com/epitome-prod/callsheet-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type callSheetServiceImpl struct {
	db            *database.DB
	synthesizer   *Synthesizer
	callSheetRepo callsheet.CallSheetRepository
	rsvpRepo      callsheet.RSVPRepository
	crewRepo      crew.CrewRepository
	projectRepo   project.ProjectRepository
	emailService  email.EmailService
	confirmURL    string
}

func NewCallSheetService(
	db *database.DB,
	callSheetRepo callsheet.CallSheetRepository,
	rsvpRepo callsheet.RSVPRepository,
	crewRepo crew.CrewRepository,
	projectRepo project.ProjectRepository,
	emailService email.EmailService,
	confirmURL string,
) callsheet.CallSheetService {
	return &callSheetServiceImpl{
		db:            db,
		synthesizer:   NewSynthesizer(),
		callSheetRepo: callSheetRepo,
		rsvpRepo:      rsvpRepo,
		crewRepo:      crewRepo,
		projectRepo:   projectRepo,
		emailService:  emailService,
		confirmURL:    confirmURL,
	}
}

// SynthesizeDay implements callsheet.CallSheetService.
func (s *callSheetServiceImpl) SynthesizeDay(req callsheet.SynthesizeRequest) callsheet.DaySheetResponse {
	return callsheet.NewDaySheetResponse(s.synthesizer.SynthesizeDay(req))
}

// GetCallSheet implements callsheet.CallSheetService.
func (s *callSheetServiceImpl) GetCallSheet(ctx context.Context, userID, id string) (callsheet.CallSheetResponse, error) {
	cs, err := s.ownedSheet(ctx, userID, id)
	if err != nil {
		return callsheet.CallSheetResponse{}, err
	}
	return newCallSheetResponse(cs), nil
}

// GetDaySheet implements callsheet.CallSheetService. The stored call times
// already carry their derived flags from the last resolution, so the day
// sheet is rebuilt from the persisted snapshot rather than re-resolved.
func (s *callSheetServiceImpl) GetDaySheet(ctx context.Context, userID, id string) (callsheet.DaySheetResponse, error) {
	cs, err := s.ownedSheet(ctx, userID, id)
	if err != nil {
		return callsheet.DaySheetResponse{}, err
	}

	records, err := s.crewRepo.ListByProject(ctx, cs.ProjectID)
	if err != nil {
		return callsheet.DaySheetResponse{}, fmt.Errorf("failed to load crew for call sheet %s: %w", id, err)
	}

	req := callsheet.SynthesizeRequest{
		GeneralCrewCall: stringOrEmpty(cs.GeneralCrewCall),
		ProductionCall:  stringOrEmpty(cs.ProductionCall),
		BreakfastCall:   stringOrEmpty(cs.BreakfastCall),
		TalentCall:      stringOrEmpty(cs.TalentCall),
		Departments:     departmentInputs(records),
	}
	sheet := s.synthesizer.SynthesizeDay(req)

	// Re-resolving a fully authoritative set is idempotent, but the stored
	// derived flags are the record of the original resolution; keep them.
	if sheet.CallTimes != nil {
		sheet.CallTimes = &callsheet.CallTimeSet{
			GeneralCrewCall: callsheet.CallTime{Value: sheet.CallTimes.GeneralCrewCall.Value, Derived: cs.GeneralCrewCallDerived},
			ProductionCall:  callsheet.CallTime{Value: sheet.CallTimes.ProductionCall.Value, Derived: cs.ProductionCallDerived},
			BreakfastCall:   callsheet.CallTime{Value: sheet.CallTimes.BreakfastCall.Value, Derived: cs.BreakfastCallDerived},
		}
	}
	return callsheet.NewDaySheetResponse(sheet), nil
}

// ListByProject implements callsheet.CallSheetService.
func (s *callSheetServiceImpl) ListByProject(ctx context.Context, userID, projectID string) ([]callsheet.CallSheetResponse, error) {
	if err := s.checkProjectOwner(ctx, userID, projectID); err != nil {
		return nil, err
	}
	sheets, err := s.callSheetRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]callsheet.CallSheetResponse, 0, len(sheets))
	for _, cs := range sheets {
		responses = append(responses, newCallSheetResponse(cs))
	}
	return responses, nil
}

// UpdateCallSheet implements callsheet.CallSheetService. Call times are
// re-resolved wholesale from the supplied strings; the previous set is
// replaced, never patched field by field.
func (s *callSheetServiceImpl) UpdateCallSheet(ctx context.Context, userID string, req callsheet.UpdateCallSheetRequest) (callsheet.CallSheetResponse, error) {
	if err := req.Validate(); err != nil {
		return callsheet.CallSheetResponse{}, err
	}

	cs, err := s.ownedSheet(ctx, userID, req.ID)
	if err != nil {
		return callsheet.CallSheetResponse{}, err
	}

	set := callsheet.Resolve(
		stringOrEmpty(req.GeneralCrewCall),
		stringOrEmpty(req.ProductionCall),
		stringOrEmpty(req.BreakfastCall),
	)
	applyCallTimeSet(&cs, set)

	if req.TalentCall != nil {
		cs.TalentCall = normalizeStored(*req.TalentCall)
	}
	if req.Notes != nil {
		cs.Notes = req.Notes
	}
	if req.Status != nil {
		cs.Status = callsheet.Status(*req.Status)
	}

	updated, err := s.callSheetRepo.Update(ctx, cs)
	if err != nil {
		return callsheet.CallSheetResponse{}, err
	}
	return newCallSheetResponse(updated), nil
}

// SendCallSheet implements callsheet.CallSheetService. One RSVP row is
// created per crew member inside a transaction; notification emails go out
// after the transaction commits so a send failure never leaves half the
// roster without RSVP rows.
func (s *callSheetServiceImpl) SendCallSheet(ctx context.Context, userID, id string) (callsheet.SendCallSheetResponse, error) {
	cs, err := s.callSheetRepo.GetByID(ctx, id)
	if err != nil {
		return callsheet.SendCallSheetResponse{}, err
	}

	proj, err := s.projectRepo.GetByID(ctx, cs.ProjectID)
	if err != nil {
		return callsheet.SendCallSheetResponse{}, err
	}
	if proj.UserID != userID {
		return callsheet.SendCallSheetResponse{}, project.ErrProjectAccessDenied
	}

	records, err := s.crewRepo.ListByProject(ctx, cs.ProjectID)
	if err != nil {
		return callsheet.SendCallSheetResponse{}, fmt.Errorf("failed to load crew for call sheet %s: %w", id, err)
	}

	now := time.Now()
	var created []callsheet.RSVP
	var recipients []crew.MemberRecord
	var skipped []string

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)
		for _, record := range records {
			if record.Email == nil || *record.Email == "" {
				skipped = append(skipped, record.Role)
				continue
			}
			rsvp, err := s.rsvpRepo.Create(txCtx, callsheet.RSVP{
				CallSheetID:          cs.ID,
				CrewMemberID:         record.ID,
				Token:                uuid.NewString(),
				Status:               callsheet.RSVPPending,
				SentAt:               &now,
				PersonalizedCallTime: personalizedCallTime(record, cs),
			})
			if err != nil {
				return err
			}
			created = append(created, rsvp)
			recipients = append(recipients, record)
		}

		cs.Status = callsheet.StatusSent
		_, err := s.callSheetRepo.Update(txCtx, cs)
		return err
	})
	if err != nil {
		return callsheet.SendCallSheetResponse{}, err
	}

	for i, rsvp := range created {
		record := recipients[i]
		callTime := "TBD"
		if rsvp.PersonalizedCallTime != nil {
			callTime = *rsvp.PersonalizedCallTime
		}
		recipientName := record.Role
		if record.Name != nil && *record.Name != "" {
			recipientName = *record.Name
		}
		confirmLink := fmt.Sprintf("%s/%s", s.confirmURL, rsvp.Token)
		if err := s.emailService.SendCallSheet(*record.Email, recipientName, proj.JobName, cs.DayNumber, cs.ShootDate.Format("2006-01-02"), callTime, confirmLink); err != nil {
			// Email delivery is best-effort; the RSVP row stays pending.
			skipped = append(skipped, record.Role)
		}
	}

	return callsheet.SendCallSheetResponse{
		CallSheetID:    cs.ID,
		SentCount:      len(created),
		SkippedNoEmail: skipped,
	}, nil
}

// ListRSVPs implements callsheet.CallSheetService.
func (s *callSheetServiceImpl) ListRSVPs(ctx context.Context, userID, callSheetID string) ([]callsheet.RSVPResponse, error) {
	if _, err := s.ownedSheet(ctx, userID, callSheetID); err != nil {
		return nil, err
	}
	rsvps, err := s.rsvpRepo.ListByCallSheet(ctx, callSheetID)
	if err != nil {
		return nil, err
	}
	responses := make([]callsheet.RSVPResponse, 0, len(rsvps))
	for _, r := range rsvps {
		responses = append(responses, newRSVPResponse(r))
	}
	return responses, nil
}

// ConfirmRSVP implements callsheet.CallSheetService. Tokens are UUIDs, so a
// malformed one is rejected before touching the database.
func (s *callSheetServiceImpl) ConfirmRSVP(ctx context.Context, token string, confirmed bool) error {
	if !validator.IsValidUUID(token) {
		return callsheet.ErrRSVPTokenInvalid
	}

	rsvp, err := s.rsvpRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}

	now := time.Now()
	if confirmed {
		rsvp.Status = callsheet.RSVPConfirmed
		rsvp.ConfirmedAt = &now
	} else {
		rsvp.Status = callsheet.RSVPDeclined
	}
	if rsvp.ViewedAt == nil {
		rsvp.ViewedAt = &now
	}

	_, err = s.rsvpRepo.Update(ctx, rsvp)
	return err
}

// ownedSheet loads a call sheet and verifies the owning project belongs to
// the requesting user.
func (s *callSheetServiceImpl) ownedSheet(ctx context.Context, userID, id string) (callsheet.CallSheet, error) {
	cs, err := s.callSheetRepo.GetByID(ctx, id)
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	if err := s.checkProjectOwner(ctx, userID, cs.ProjectID); err != nil {
		return callsheet.CallSheet{}, err
	}
	return cs, nil
}

func (s *callSheetServiceImpl) checkProjectOwner(ctx context.Context, userID, projectID string) error {
	proj, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if proj.UserID != userID {
		return project.ErrProjectAccessDenied
	}
	return nil
}

// personalizedCallTime prefers the member's own call time over the day's
// general crew call.
func personalizedCallTime(record crew.MemberRecord, cs callsheet.CallSheet) *string {
	if record.CallTime != nil && *record.CallTime != "" {
		return record.CallTime
	}
	return cs.GeneralCrewCall
}

func applyCallTimeSet(cs *callsheet.CallSheet, set *callsheet.CallTimeSet) {
	if set == nil {
		cs.GeneralCrewCall = nil
		cs.GeneralCrewCallDerived = false
		cs.ProductionCall = nil
		cs.ProductionCallDerived = false
		cs.BreakfastCall = nil
		cs.BreakfastCallDerived = false
		return
	}
	cs.GeneralCrewCall = formattedPtr(set.GeneralCrewCall.Value)
	cs.GeneralCrewCallDerived = set.GeneralCrewCall.Derived
	cs.ProductionCall = formattedPtr(set.ProductionCall.Value)
	cs.ProductionCallDerived = set.ProductionCall.Derived
	cs.BreakfastCall = formattedPtr(set.BreakfastCall.Value)
	cs.BreakfastCallDerived = set.BreakfastCall.Derived
}

func departmentInputs(records []crew.MemberRecord) []callsheet.DepartmentInput {
	byDept := make(map[crew.Code]*callsheet.DepartmentInput)
	var ordered []*callsheet.DepartmentInput
	for _, record := range records {
		input, ok := byDept[record.Department]
		if !ok {
			input = &callsheet.DepartmentInput{Name: string(record.Department)}
			byDept[record.Department] = input
			ordered = append(ordered, input)
		}
		input.Crew = append(input.Crew, callsheet.CrewMemberInput{
			Role:     record.Role,
			Name:     record.Name,
			Phone:    record.Phone,
			Email:    record.Email,
			CallTime: record.CallTime,
			Location: record.Location,
		})
	}

	inputs := make([]callsheet.DepartmentInput, 0, len(ordered))
	for _, input := range ordered {
		inputs = append(inputs, *input)
	}
	return inputs
}

func newCallSheetResponse(cs callsheet.CallSheet) callsheet.CallSheetResponse {
	return callsheet.CallSheetResponse{
		ID:        cs.ID,
		ProjectID: cs.ProjectID,
		DayNumber: cs.DayNumber,
		ShootDate: cs.ShootDate.Format("2006-01-02"),
		Status:    string(cs.Status),

		GeneralCrewCall:        displayOrTBD(cs.GeneralCrewCall),
		GeneralCrewCallDerived: cs.GeneralCrewCallDerived,
		ProductionCall:         displayOrTBD(cs.ProductionCall),
		ProductionCallDerived:  cs.ProductionCallDerived,
		BreakfastCall:          displayOrTBD(cs.BreakfastCall),
		BreakfastCallDerived:   cs.BreakfastCallDerived,
		TalentCall:             displayOrTBD(cs.TalentCall),

		WeatherHigh:     cs.WeatherHigh,
		WeatherLow:      cs.WeatherLow,
		WeatherSummary:  cs.WeatherSummary,
		Sunrise:         cs.Sunrise,
		Sunset:          cs.Sunset,
		NearestHospital: cs.NearestHospital,
		HospitalAddress: cs.HospitalAddress,

		Notes:     cs.Notes,
		CreatedAt: cs.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cs.UpdatedAt.Format(time.RFC3339),
	}
}

func newRSVPResponse(r callsheet.RSVP) callsheet.RSVPResponse {
	return callsheet.RSVPResponse{
		ID:                   r.ID,
		CallSheetID:          r.CallSheetID,
		CrewMemberID:         r.CrewMemberID,
		Status:               string(r.Status),
		SentAt:               formatTimePtr(r.SentAt),
		ViewedAt:             formatTimePtr(r.ViewedAt),
		ConfirmedAt:          formatTimePtr(r.ConfirmedAt),
		PersonalizedCallTime: r.PersonalizedCallTime,
		PersonalizedNotes:    r.PersonalizedNotes,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func normalizeStored(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func displayOrTBD(s *string) string {
	if s == nil || *s == "" {
		return "TBD"
	}
	return *s
}

func formattedPtr(t callsheet.TimeOfDay) *string {
	formatted := t.String()
	return &formatted
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
