package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrLeagueUnavailable means the league standings could not be fetched,
	// so a run has no teams and returns an empty result.
	ErrLeagueUnavailable = errors.New("league standings unavailable")
)
