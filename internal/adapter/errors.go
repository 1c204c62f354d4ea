package adapter

import "errors"

// Transport errors produced by mapHTTPError. The response message is
// appended after the sentinel: "<sentinel>: <message>".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var (
	// ErrAPIKeyNotProvided is returned by NewCompletionClient without an API key.
	ErrAPIKeyNotProvided = errors.New("completion api key is not provided")

	// ErrEmptyCompletion is returned when the provider answers without choices.
	ErrEmptyCompletion = errors.New("completion has no choices")

	// ErrInvalidBaseURL is returned for an address without scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base url")
)
