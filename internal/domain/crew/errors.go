package crew

import "errors"

var (
	ErrCrewMemberNotFound = errors.New("crew member not found")
)
