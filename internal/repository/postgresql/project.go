package postgresql

import (
	"context"
	"errors"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/project"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `id, user_id, job_name, job_number, client, production_company,
	shoot_start_date, shoot_end_date, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.JobName,
		&p.JobNumber,
		&p.Client,
		&p.ProductionCompany,
		&p.ShootStartDate,
		&p.ShootEndDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (user_id, job_name, job_number, client, production_company, shoot_start_date, shoot_end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		p.UserID,
		p.JobName,
		p.JobNumber,
		p.Client,
		p.ProductionCompany,
		p.ShootStartDate,
		p.ShootEndDate,
	))
	if err != nil {
		return project.Project{}, err
	}
	return created, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// ListByUser implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET job_name = $1, job_number = $2, client = $3, production_company = $4,
			shoot_start_date = $5, shoot_end_date = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + projectColumns

	updated, err := scanProject(q.QueryRow(ctx, query,
		p.JobName,
		p.JobNumber,
		p.Client,
		p.ProductionCompany,
		p.ShootStartDate,
		p.ShootEndDate,
		p.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return updated, nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) project.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `id, project_id, name, address, formatted_address, latitude, longitude,
	contact_name, contact_phone, parking_notes, created_at, updated_at`

func scanLocation(row pgx.Row) (project.Location, error) {
	var l project.Location
	err := row.Scan(
		&l.ID,
		&l.ProjectID,
		&l.Name,
		&l.Address,
		&l.FormattedAddress,
		&l.Latitude,
		&l.Longitude,
		&l.ContactName,
		&l.ContactPhone,
		&l.ParkingNotes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements project.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, l project.Location) (project.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (project_id, name, address, formatted_address, latitude, longitude, contact_name, contact_phone, parking_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + locationColumns

	created, err := scanLocation(q.QueryRow(ctx, query,
		l.ProjectID,
		l.Name,
		l.Address,
		l.FormattedAddress,
		l.Latitude,
		l.Longitude,
		l.ContactName,
		l.ContactPhone,
		l.ParkingNotes,
	))
	if err != nil {
		return project.Location{}, err
	}
	return created, nil
}

// ListByProject implements project.LocationRepository.
func (r *locationRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]project.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE project_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []project.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// Update implements project.LocationRepository.
func (r *locationRepositoryImpl) Update(ctx context.Context, l project.Location) (project.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations
		SET name = $1, address = $2, formatted_address = $3, latitude = $4, longitude = $5,
			contact_name = $6, contact_phone = $7, parking_notes = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + locationColumns

	updated, err := scanLocation(q.QueryRow(ctx, query,
		l.Name,
		l.Address,
		l.FormattedAddress,
		l.Latitude,
		l.Longitude,
		l.ContactName,
		l.ContactPhone,
		l.ParkingNotes,
		l.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Location{}, project.ErrLocationNotFound
		}
		return project.Location{}, err
	}
	return updated, nil
}
