package callsheet

import "context"

type CallSheetRepository interface {
	Create(ctx context.Context, cs CallSheet) (CallSheet, error)
	GetByID(ctx context.Context, id string) (CallSheet, error)
	ListByProject(ctx context.Context, projectID string) ([]CallSheet, error)
	Update(ctx context.Context, cs CallSheet) (CallSheet, error)
	Delete(ctx context.Context, id string) error
}

type RSVPRepository interface {
	Create(ctx context.Context, r RSVP) (RSVP, error)
	GetByToken(ctx context.Context, token string) (RSVP, error)
	ListByCallSheet(ctx context.Context, callSheetID string) ([]RSVP, error)
	Update(ctx context.Context, r RSVP) (RSVP, error)
}
