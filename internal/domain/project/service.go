package project

import "context"

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, userID, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context, userID string) ([]ProjectResponse, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, userID, id string) error

	// Generate persists a project from an extraction payload, runs the
	// synthesis pipeline for every schedule day and enriches locations and
	// weather where the enrichment backend is configured.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}
