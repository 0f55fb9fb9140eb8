package callsheet

import "context"

type CallSheetService interface {
	// SynthesizeDay runs the pure per-day pipeline (fallback roster,
	// department grouping, column balancing, call-time resolution). It is
	// deterministic, total over its input, and safe to call concurrently
	// for independent days.
	SynthesizeDay(req SynthesizeRequest) DaySheetResponse

	GetCallSheet(ctx context.Context, userID, id string) (CallSheetResponse, error)
	GetDaySheet(ctx context.Context, userID, id string) (DaySheetResponse, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]CallSheetResponse, error)
	UpdateCallSheet(ctx context.Context, userID string, req UpdateCallSheetRequest) (CallSheetResponse, error)

	// RSVP flow
	SendCallSheet(ctx context.Context, userID, id string) (SendCallSheetResponse, error)
	ListRSVPs(ctx context.Context, userID, callSheetID string) ([]RSVPResponse, error)
	ConfirmRSVP(ctx context.Context, token string, confirmed bool) error
}
