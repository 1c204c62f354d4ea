package service

import (
	"context"

	"github.com/MKhiriev/go-study-mate/models"
)

// ClientAuthService defines the client-side contract for signing up and
// logging in. A successful call keeps the issued token in the server adapter
// so later requests are authenticated.
type ClientAuthService interface {
	// Signup creates the account on the server and starts a session.
	// Returns ErrInvalidDataProvided or store.ErrUsernameAlreadyExists for
	// the matching server answers.
	Signup(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login starts a session. Returns ErrInvalidCredentials when the server
	// rejects the pair.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout forgets the current token locally. The server keeps it valid
	// until the next login.
	Logout()
}

// ClientStudyPlanService defines the client-side contract for the AI
// features of the server.
type ClientStudyPlanService interface {
	// GeneratePlan requests a new roadmap; it replaces the stored one.
	GeneratePlan(ctx context.Context, req models.PlanRequest) (models.PlanJSON, error)

	// LatestPlan fetches the stored roadmap. Returns store.ErrPlanNotFound
	// when nothing was generated yet.
	LatestPlan(ctx context.Context) (models.StoredPlanResponse, error)

	// Chat sends one message to the mentor and returns its answer.
	Chat(ctx context.Context, message string) (string, error)
}

// ClientAppInfoService reports the version of the server the client talks to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
