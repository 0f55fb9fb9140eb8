package callsheet

import "errors"

var (
	ErrCallSheetNotFound = errors.New("call sheet not found")
	ErrRSVPNotFound      = errors.New("rsvp not found")
	ErrRSVPTokenInvalid  = errors.New("rsvp token invalid or expired")
	ErrCrewMemberNoEmail = errors.New("crew member has no email address")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
