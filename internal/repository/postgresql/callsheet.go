package postgresql

import (
	"context"
	"errors"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type callSheetRepositoryImpl struct {
	db *database.DB
}

func NewCallSheetRepository(db *database.DB) callsheet.CallSheetRepository {
	return &callSheetRepositoryImpl{db: db}
}

const callSheetColumns = `id, project_id, day_number, shoot_date, status,
	general_crew_call, general_crew_call_derived,
	production_call, production_call_derived,
	breakfast_call, breakfast_call_derived,
	talent_call,
	weather_high, weather_low, weather_summary, sunrise, sunset,
	nearest_hospital, hospital_address,
	notes, created_at, updated_at`

func scanCallSheet(row pgx.Row) (callsheet.CallSheet, error) {
	var cs callsheet.CallSheet
	err := row.Scan(
		&cs.ID,
		&cs.ProjectID,
		&cs.DayNumber,
		&cs.ShootDate,
		&cs.Status,
		&cs.GeneralCrewCall,
		&cs.GeneralCrewCallDerived,
		&cs.ProductionCall,
		&cs.ProductionCallDerived,
		&cs.BreakfastCall,
		&cs.BreakfastCallDerived,
		&cs.TalentCall,
		&cs.WeatherHigh,
		&cs.WeatherLow,
		&cs.WeatherSummary,
		&cs.Sunrise,
		&cs.Sunset,
		&cs.NearestHospital,
		&cs.HospitalAddress,
		&cs.Notes,
		&cs.CreatedAt,
		&cs.UpdatedAt,
	)
	return cs, err
}

// Create implements callsheet.CallSheetRepository.
func (r *callSheetRepositoryImpl) Create(ctx context.Context, cs callsheet.CallSheet) (callsheet.CallSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO call_sheets (
			project_id, day_number, shoot_date, status,
			general_crew_call, general_crew_call_derived,
			production_call, production_call_derived,
			breakfast_call, breakfast_call_derived,
			talent_call, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + callSheetColumns

	created, err := scanCallSheet(q.QueryRow(ctx, query,
		cs.ProjectID,
		cs.DayNumber,
		cs.ShootDate,
		cs.Status,
		cs.GeneralCrewCall,
		cs.GeneralCrewCallDerived,
		cs.ProductionCall,
		cs.ProductionCallDerived,
		cs.BreakfastCall,
		cs.BreakfastCallDerived,
		cs.TalentCall,
		cs.Notes,
	))
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	return created, nil
}

// GetByID implements callsheet.CallSheetRepository.
func (r *callSheetRepositoryImpl) GetByID(ctx context.Context, id string) (callsheet.CallSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + callSheetColumns + ` FROM call_sheets WHERE id = $1`

	cs, err := scanCallSheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return callsheet.CallSheet{}, callsheet.ErrCallSheetNotFound
		}
		return callsheet.CallSheet{}, err
	}
	return cs, nil
}

// ListByProject implements callsheet.CallSheetRepository.
func (r *callSheetRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]callsheet.CallSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + callSheetColumns + ` FROM call_sheets WHERE project_id = $1 ORDER BY day_number`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []callsheet.CallSheet
	for rows.Next() {
		cs, err := scanCallSheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, cs)
	}
	return sheets, rows.Err()
}

// Update implements callsheet.CallSheetRepository.
func (r *callSheetRepositoryImpl) Update(ctx context.Context, cs callsheet.CallSheet) (callsheet.CallSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE call_sheets
		SET status = $1,
			general_crew_call = $2, general_crew_call_derived = $3,
			production_call = $4, production_call_derived = $5,
			breakfast_call = $6, breakfast_call_derived = $7,
			talent_call = $8,
			weather_high = $9, weather_low = $10, weather_summary = $11,
			sunrise = $12, sunset = $13,
			nearest_hospital = $14, hospital_address = $15,
			notes = $16, updated_at = NOW()
		WHERE id = $17
		RETURNING ` + callSheetColumns

	updated, err := scanCallSheet(q.QueryRow(ctx, query,
		cs.Status,
		cs.GeneralCrewCall,
		cs.GeneralCrewCallDerived,
		cs.ProductionCall,
		cs.ProductionCallDerived,
		cs.BreakfastCall,
		cs.BreakfastCallDerived,
		cs.TalentCall,
		cs.WeatherHigh,
		cs.WeatherLow,
		cs.WeatherSummary,
		cs.Sunrise,
		cs.Sunset,
		cs.NearestHospital,
		cs.HospitalAddress,
		cs.Notes,
		cs.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return callsheet.CallSheet{}, callsheet.ErrCallSheetNotFound
		}
		return callsheet.CallSheet{}, err
	}
	return updated, nil
}

// Delete implements callsheet.CallSheetRepository.
func (r *callSheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM call_sheets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return callsheet.ErrCallSheetNotFound
	}
	return nil
}

type rsvpRepositoryImpl struct {
	db *database.DB
}

func NewRSVPRepository(db *database.DB) callsheet.RSVPRepository {
	return &rsvpRepositoryImpl{db: db}
}

const rsvpColumns = `id, call_sheet_id, crew_member_id, token, status,
	sent_at, viewed_at, confirmed_at,
	personalized_call_time, personalized_notes, created_at, updated_at`

func scanRSVP(row pgx.Row) (callsheet.RSVP, error) {
	var rsvp callsheet.RSVP
	err := row.Scan(
		&rsvp.ID,
		&rsvp.CallSheetID,
		&rsvp.CrewMemberID,
		&rsvp.Token,
		&rsvp.Status,
		&rsvp.SentAt,
		&rsvp.ViewedAt,
		&rsvp.ConfirmedAt,
		&rsvp.PersonalizedCallTime,
		&rsvp.PersonalizedNotes,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	return rsvp, err
}

// Create implements callsheet.RSVPRepository.
func (r *rsvpRepositoryImpl) Create(ctx context.Context, rsvp callsheet.RSVP) (callsheet.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rsvps (call_sheet_id, crew_member_id, token, status, sent_at, personalized_call_time, personalized_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + rsvpColumns

	created, err := scanRSVP(q.QueryRow(ctx, query,
		rsvp.CallSheetID,
		rsvp.CrewMemberID,
		rsvp.Token,
		rsvp.Status,
		rsvp.SentAt,
		rsvp.PersonalizedCallTime,
		rsvp.PersonalizedNotes,
	))
	if err != nil {
		return callsheet.RSVP{}, err
	}
	return created, nil
}

// GetByToken implements callsheet.RSVPRepository.
func (r *rsvpRepositoryImpl) GetByToken(ctx context.Context, token string) (callsheet.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE token = $1`

	rsvp, err := scanRSVP(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return callsheet.RSVP{}, callsheet.ErrRSVPNotFound
		}
		return callsheet.RSVP{}, err
	}
	return rsvp, nil
}

// ListByCallSheet implements callsheet.RSVPRepository.
func (r *rsvpRepositoryImpl) ListByCallSheet(ctx context.Context, callSheetID string) ([]callsheet.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE call_sheet_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, callSheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []callsheet.RSVP
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

// Update implements callsheet.RSVPRepository.
func (r *rsvpRepositoryImpl) Update(ctx context.Context, rsvp callsheet.RSVP) (callsheet.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rsvps
		SET status = $1, sent_at = $2, viewed_at = $3, confirmed_at = $4,
			personalized_call_time = $5, personalized_notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + rsvpColumns

	updated, err := scanRSVP(q.QueryRow(ctx, query,
		rsvp.Status,
		rsvp.SentAt,
		rsvp.ViewedAt,
		rsvp.ConfirmedAt,
		rsvp.PersonalizedCallTime,
		rsvp.PersonalizedNotes,
		rsvp.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return callsheet.RSVP{}, callsheet.ErrRSVPNotFound
		}
		return callsheet.RSVP{}, err
	}
	return updated, nil
}
