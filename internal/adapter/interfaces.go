// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP transports of go-study-mate.
//
// [CompletionClient] talks to an OpenAI-compatible chat-completion API (Groq
// by default) on behalf of the server. [ServerAdapter] is used by the
// terminal client to call the StudyMate server itself.
//
// Both implementations are built on resty. Non-2xx responses are mapped by
// mapHTTPError to the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-mate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CompletionClient turns a role-tagged conversation into generated text.
type CompletionClient interface {
	// Complete sends req and returns the content of the first choice.
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// ServerAdapter defines the terminal client's view of the StudyMate HTTP
// API. Implementations keep the bearer token returned by Signup and Login
// and attach it to authenticated calls.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Signup registers a new account and stores the issued token.
	Signup(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates and stores the freshly issued token. Any token
	// issued earlier for the same user stops working on the server.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// GeneratePlan asks the server for a new 12-month roadmap.
	GeneratePlan(ctx context.Context, req models.PlanRequest) (models.PlanJSON, error)

	// GetPlan fetches the latest stored roadmap of the current user.
	GetPlan(ctx context.Context) (models.StoredPlanResponse, error)

	// Chat sends one message to the mentor bot and returns its answer.
	Chat(ctx context.Context, message string) (string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
