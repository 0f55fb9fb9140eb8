package postgresql

import (
	"context"
	"errors"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type crewRepositoryImpl struct {
	db *database.DB
}

func NewCrewRepository(db *database.DB) crew.CrewRepository {
	return &crewRepositoryImpl{db: db}
}

const crewColumns = `id, project_id, department, role, name, phone, email, call_time, location, created_at, updated_at`

func scanCrewMember(row pgx.Row) (crew.MemberRecord, error) {
	var m crew.MemberRecord
	err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.Department,
		&m.Role,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.CallTime,
		&m.Location,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// CreateMember implements crew.CrewRepository.
func (r *crewRepositoryImpl) CreateMember(ctx context.Context, m crew.MemberRecord) (crew.MemberRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO crew_members (project_id, department, role, name, phone, email, call_time, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + crewColumns

	created, err := scanCrewMember(q.QueryRow(ctx, query,
		m.ProjectID,
		m.Department,
		m.Role,
		m.Name,
		m.Phone,
		m.Email,
		m.CallTime,
		m.Location,
	))
	if err != nil {
		return crew.MemberRecord{}, err
	}
	return created, nil
}

// GetByID implements crew.CrewRepository.
func (r *crewRepositoryImpl) GetByID(ctx context.Context, id string) (crew.MemberRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE id = $1`

	m, err := scanCrewMember(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.MemberRecord{}, crew.ErrCrewMemberNotFound
		}
		return crew.MemberRecord{}, err
	}
	return m, nil
}

// ListByProject implements crew.CrewRepository. Ordering matches insertion
// so department grouping stays stable across reads.
func (r *crewRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]crew.MemberRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE project_id = $1 ORDER BY created_at, id`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []crew.MemberRecord
	for rows.Next() {
		m, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateMember implements crew.CrewRepository.
func (r *crewRepositoryImpl) UpdateMember(ctx context.Context, m crew.MemberRecord) (crew.MemberRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE crew_members
		SET department = $1, role = $2, name = $3, phone = $4, email = $5,
			call_time = $6, location = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + crewColumns

	updated, err := scanCrewMember(q.QueryRow(ctx, query,
		m.Department,
		m.Role,
		m.Name,
		m.Phone,
		m.Email,
		m.CallTime,
		m.Location,
		m.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return crew.MemberRecord{}, crew.ErrCrewMemberNotFound
		}
		return crew.MemberRecord{}, err
	}
	return updated, nil
}

// DeleteMember implements crew.CrewRepository.
func (r *crewRepositoryImpl) DeleteMember(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM crew_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return crew.ErrCrewMemberNotFound
	}
	return nil
}
