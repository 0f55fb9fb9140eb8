package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	ListByUser(ctx context.Context, userID string) ([]Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id string) error
}

type LocationRepository interface {
	Create(ctx context.Context, l Location) (Location, error)
	ListByProject(ctx context.Context, projectID string) ([]Location, error)
	Update(ctx context.Context, l Location) (Location, error)
}
