package client

import "errors"

// Failure categories surfaced to callers. Match with errors.Is.
var (
	// ErrInvalidCredentials covers HTTP 401: bad login or an expired session.
	ErrInvalidCredentials = errors.New("invalid credentials or expired session")

	// ErrUnauthorized covers HTTP 403.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrRateLimited covers HTTP 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer covers HTTP 5xx.
	ErrServer = errors.New("server error")

	// ErrInvalidResponse means the call reached the backend but the payload
	// lacked the expected data path.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrUnexpected covers everything else: network failures, timeouts,
	// undecodable bodies, statuses outside the table above.
	ErrUnexpected = errors.New("unexpected error")

	// ErrNotAuthenticated is raised locally, before any network call, when an
	// authenticated operation is attempted without a full credential set.
	ErrNotAuthenticated = errors.New("not authenticated")
)
