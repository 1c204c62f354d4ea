package store

import (
	"context"

	"github.com/MKhiriev/go-study-mate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: username -> {password hash,
// current auth token}.
type UserRepository interface {
	// CreateUser inserts a new user. It returns [ErrUsernameAlreadyExists]
	// if the username is taken; the existing record is left untouched.
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByUsername returns [ErrNoUserWasFound] for unknown usernames.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByToken returns the user whose current token equals token, or
	// [ErrNoUserWasFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	// UpdateAuthToken replaces the user's current token. The previous token
	// stops resolving immediately.
	UpdateAuthToken(ctx context.Context, username, token string) error
}

// PlanRepository keeps the latest generated plan of every user.
type PlanRepository interface {
	// SavePlan stores plan for plan.Username, overwriting any previous one.
	SavePlan(ctx context.Context, plan models.Plan) error
	// GetPlan returns [ErrPlanNotFound] when the user has no plan yet.
	GetPlan(ctx context.Context, username string) (models.Plan, error)
}
