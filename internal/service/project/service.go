package project

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/project"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/enrichment"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/sse"
	"github.com/epitome-prod/callsheet-backend-go/internal/repository/postgresql"
	callsheetsvc "github.com/epitome-prod/callsheet-backend-go/internal/service/callsheet"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectServiceImpl struct {
	db            *database.DB
	synthesizer   *callsheetsvc.Synthesizer
	projectRepo   project.ProjectRepository
	locationRepo  project.LocationRepository
	crewRepo      crew.CrewRepository
	callSheetRepo callsheet.CallSheetRepository
	enricher      enrichment.Service
	hub           *sse.Hub
}

func NewProjectService(
	db *database.DB,
	projectRepo project.ProjectRepository,
	locationRepo project.LocationRepository,
	crewRepo crew.CrewRepository,
	callSheetRepo callsheet.CallSheetRepository,
	enricher enrichment.Service,
	hub *sse.Hub,
) project.ProjectService {
	return &projectServiceImpl{
		db:            db,
		synthesizer:   callsheetsvc.NewSynthesizer(),
		projectRepo:   projectRepo,
		locationRepo:  locationRepo,
		crewRepo:      crewRepo,
		callSheetRepo: callSheetRepo,
		enricher:      enricher,
		hub:           hub,
	}
}

// CreateProject implements project.ProjectService.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	p := project.Project{
		UserID:            req.UserID,
		JobName:           req.JobName,
		JobNumber:         req.JobNumber,
		Client:            req.Client,
		ProductionCompany: req.ProductionCompany,
		ShootStartDate:    parseDatePtr(req.ShootStartDate),
		ShootEndDate:      parseDatePtr(req.ShootEndDate),
	}
	created, err := s.projectRepo.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}
	return newProjectResponse(created), nil
}

// GetProject implements project.ProjectService.
func (s *projectServiceImpl) GetProject(ctx context.Context, userID, id string) (project.ProjectResponse, error) {
	p, err := s.ownedProject(ctx, userID, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return newProjectResponse(p), nil
}

// ListProjects implements project.ProjectService.
func (s *projectServiceImpl) ListProjects(ctx context.Context, userID string) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(p))
	}
	return responses, nil
}

// UpdateProject implements project.ProjectService.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	p, err := s.ownedProject(ctx, req.UserID, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.JobName != nil {
		p.JobName = *req.JobName
	}
	if req.JobNumber != nil {
		p.JobNumber = req.JobNumber
	}
	if req.Client != nil {
		p.Client = req.Client
	}
	if req.ProductionCompany != nil {
		p.ProductionCompany = req.ProductionCompany
	}

	updated, err := s.projectRepo.Update(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return newProjectResponse(updated), nil
}

// DeleteProject implements project.ProjectService.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.ownedProject(ctx, userID, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

// Generate implements project.ProjectService. The extraction payload is
// persisted and synthesized in one transaction, then each shoot day is
// enriched with external data outside of it. Progress events stream to the
// user's open SSE subscriptions throughout.
func (s *projectServiceImpl) Generate(ctx context.Context, req project.GenerateRequest) (project.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return project.GenerateResponse{}, err
	}

	runID := uuid.NewString()
	s.publish(req.UserID, runID, "persist", 10, "Saving project data")

	var (
		proj       project.Project
		locations  []project.Location
		callSheets []callsheet.CallSheet
		daySheets  []callsheet.DaySheet
	)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		var err error
		proj, err = s.projectRepo.Create(txCtx, project.Project{
			UserID:            req.UserID,
			JobName:           req.ProductionInfo.JobName,
			JobNumber:         req.ProductionInfo.JobNumber,
			Client:            req.ProductionInfo.Client,
			ProductionCompany: req.ProductionInfo.ProductionCompany,
			ShootStartDate:    scheduleBound(req.ScheduleDays, true),
			ShootEndDate:      scheduleBound(req.ScheduleDays, false),
		})
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		for _, input := range req.Locations {
			loc, err := s.locationRepo.Create(txCtx, project.Location{
				ProjectID:    proj.ID,
				Name:         input.Name,
				Address:      input.Address,
				ContactName:  input.ContactName,
				ContactPhone: input.ContactPhone,
				ParkingNotes: input.ParkingNotes,
			})
			if err != nil {
				return fmt.Errorf("failed to create location: %w", err)
			}
			locations = append(locations, loc)
		}

		for _, dept := range req.Departments {
			code := crew.Normalize(dept.Name)
			for _, member := range dept.Crew {
				if _, err := s.crewRepo.CreateMember(txCtx, crew.MemberRecord{
					ProjectID:  proj.ID,
					Department: code,
					Role:       member.Role,
					Name:       member.Name,
					Phone:      member.Phone,
					Email:      member.Email,
					CallTime:   member.CallTime,
					Location:   member.Location,
				}); err != nil {
					return fmt.Errorf("failed to create crew member: %w", err)
				}
			}
		}

		s.publish(req.UserID, runID, "synthesize", 40, "Resolving call times and crew layout")

		for _, day := range req.ScheduleDays {
			sheet := s.synthesizer.SynthesizeDay(callsheet.SynthesizeRequest{
				GeneralCrewCall: day.GeneralCrewCall,
				ProductionCall:  day.ProductionCall,
				BreakfastCall:   day.BreakfastCall,
				TalentCall:      day.TalentCall,
				Departments:     req.Departments,
			})
			daySheets = append(daySheets, sheet)

			cs := callsheet.CallSheet{
				ProjectID: proj.ID,
				DayNumber: day.DayNumber,
				ShootDate: parseDateOrZero(day.Date),
				Status:    callsheet.StatusDraft,
			}
			applyCallTimes(&cs, sheet)
			created, err := s.callSheetRepo.Create(txCtx, cs)
			if err != nil {
				return fmt.Errorf("failed to create call sheet for day %d: %w", day.DayNumber, err)
			}
			callSheets = append(callSheets, created)
		}
		return nil
	})
	if err != nil {
		return project.GenerateResponse{}, err
	}

	s.publish(req.UserID, runID, "enrich", 70, "Looking up locations, hospitals and weather")
	locations = s.enrichLocations(ctx, locations)
	callSheets = s.enrichCallSheets(ctx, callSheets, locations)

	s.publish(req.UserID, runID, "done", 100, "Call sheets ready")

	resp := project.GenerateResponse{
		Project:    newProjectResponse(proj),
		Locations:  make([]project.LocationResponse, 0, len(locations)),
		CallSheets: make([]callsheet.CallSheetResponse, 0, len(callSheets)),
		DaySheets:  make([]callsheet.DaySheetResponse, 0, len(daySheets)),
	}
	for _, loc := range locations {
		resp.Locations = append(resp.Locations, newLocationResponse(loc))
	}
	for _, cs := range callSheets {
		resp.CallSheets = append(resp.CallSheets, newCallSheetResponse(cs))
	}
	for _, sheet := range daySheets {
		resp.DaySheets = append(resp.DaySheets, callsheet.NewDaySheetResponse(sheet))
	}
	return resp, nil
}

// enrichLocations geocodes every location with a usable address. Failures
// leave the location as extracted.
func (s *projectServiceImpl) enrichLocations(ctx context.Context, locations []project.Location) []project.Location {
	for i, loc := range locations {
		if loc.Address == nil {
			continue
		}
		coords := s.enricher.GeocodeAddress(ctx, *loc.Address)
		if coords == nil {
			continue
		}
		loc.FormattedAddress = &coords.FormattedAddress
		loc.Latitude = &coords.Lat
		loc.Longitude = &coords.Lng

		updated, err := s.locationRepo.Update(ctx, loc)
		if err == nil {
			loc = updated
		}
		locations[i] = loc
	}
	return locations
}

// enrichCallSheets attaches the nearest hospital and the shoot-day weather
// using the first geocoded location as the reference point.
func (s *projectServiceImpl) enrichCallSheets(ctx context.Context, callSheets []callsheet.CallSheet, locations []project.Location) []callsheet.CallSheet {
	var lat, lng *float64
	for _, loc := range locations {
		if loc.Latitude != nil && loc.Longitude != nil {
			lat, lng = loc.Latitude, loc.Longitude
			break
		}
	}
	if lat == nil || lng == nil {
		return callSheets
	}

	hospital := s.enricher.FindNearestHospital(ctx, *lat, *lng)

	// Weather lookups are independent per shoot day, so fetch them
	// concurrently. The enrichment client caches under its own lock.
	forecasts := make([]*enrichment.Weather, len(callSheets))
	var wg sync.WaitGroup
	for i, cs := range callSheets {
		if cs.ShootDate.IsZero() {
			continue
		}
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			forecasts[i] = s.enricher.GetWeather(ctx, *lat, *lng, date)
		}(i, cs.ShootDate.Format("2006-01-02"))
	}
	wg.Wait()

	for i, cs := range callSheets {
		if hospital != nil {
			cs.NearestHospital = &hospital.Name
			cs.HospitalAddress = &hospital.Address
		}
		if weather := forecasts[i]; weather != nil {
			cs.WeatherHigh = &weather.High
			cs.WeatherLow = &weather.Low
			cs.WeatherSummary = &weather.Summary
			cs.Sunrise = normalizeStored(weather.Sunrise)
			cs.Sunset = normalizeStored(weather.Sunset)
		}

		updated, err := s.callSheetRepo.Update(ctx, cs)
		if err == nil {
			cs = updated
		}
		callSheets[i] = cs
	}
	return callSheets
}

func (s *projectServiceImpl) publish(userID, runID, stage string, percent int, message string) {
	s.hub.Publish(userID, sse.ProgressEvent{
		RunID:   runID,
		Stage:   stage,
		Percent: percent,
		Message: message,
	})
}

func (s *projectServiceImpl) ownedProject(ctx context.Context, userID, id string) (project.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if p.UserID != userID {
		return project.Project{}, project.ErrProjectAccessDenied
	}
	return p, nil
}

func applyCallTimes(cs *callsheet.CallSheet, sheet callsheet.DaySheet) {
	cs.TalentCall = normalizeStored(sheet.TalentCall)
	if cs.TalentCall != nil && *cs.TalentCall == "TBD" {
		cs.TalentCall = nil
	}
	if sheet.CallTimes == nil {
		return
	}
	general := sheet.CallTimes.GeneralCrewCall.Value.String()
	production := sheet.CallTimes.ProductionCall.Value.String()
	breakfast := sheet.CallTimes.BreakfastCall.Value.String()
	cs.GeneralCrewCall = &general
	cs.GeneralCrewCallDerived = sheet.CallTimes.GeneralCrewCall.Derived
	cs.ProductionCall = &production
	cs.ProductionCallDerived = sheet.CallTimes.ProductionCall.Derived
	cs.BreakfastCall = &breakfast
	cs.BreakfastCallDerived = sheet.CallTimes.BreakfastCall.Derived
}

// scheduleBound returns the earliest or latest parseable schedule date.
func scheduleBound(days []project.ScheduleDayInput, earliest bool) *time.Time {
	var bound *time.Time
	for _, day := range days {
		t, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		if bound == nil || (earliest && t.Before(*bound)) || (!earliest && t.After(*bound)) {
			parsed := t
			bound = &parsed
		}
	}
	return bound
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseDateOrZero(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func normalizeStored(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newProjectResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:                p.ID,
		JobName:           p.JobName,
		JobNumber:         p.JobNumber,
		Client:            p.Client,
		ProductionCompany: p.ProductionCompany,
		ShootStartDate:    formatDatePtr(p.ShootStartDate),
		ShootEndDate:      formatDatePtr(p.ShootEndDate),
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

func newLocationResponse(l project.Location) project.LocationResponse {
	return project.LocationResponse{
		ID:               l.ID,
		Name:             l.Name,
		Address:          l.Address,
		FormattedAddress: l.FormattedAddress,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		ContactName:      l.ContactName,
		ContactPhone:     l.ContactPhone,
		ParkingNotes:     l.ParkingNotes,
	}
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

func displayOrTBD(s *string) string {
	if s == nil || *s == "" {
		return "TBD"
	}
	return *s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
