package model

import "errors"

var (
	// ErrEmployeeNotFound indicates that the requested employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
)
