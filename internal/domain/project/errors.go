package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectAccessDenied = errors.New("project does not belong to this user")
	ErrLocationNotFound    = errors.New("location not found")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
