package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by signup for an empty username or
	// password.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by login for an unknown user, a wrong
	// password or empty fields.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

var (
	// ErrAIClientNotConfigured is returned by the AI gateway when the server
	// runs without a completion API key.
	ErrAIClientNotConfigured = errors.New("ai client not configured")

	// ErrPlanGenerationFailed is returned when the completion call fails or
	// its content is not a roadmap.
	ErrPlanGenerationFailed = errors.New("plan generation failed")

	ErrChatFailed = errors.New("chat failed")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
