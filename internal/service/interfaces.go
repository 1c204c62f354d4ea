package service

import (
	"context"

	"github.com/MKhiriev/go-study-mate/models"
)

// AuthService registers users, checks their passwords and resolves bearer
// tokens back to accounts.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (models.Session, error)
	Login(ctx context.Context, username, password string) (models.Session, error)

	// ResolveToken accepts the raw Authorization header value.
	ResolveToken(ctx context.Context, authorizationHeader string) (models.User, error)
}

// StudyPlanService is the AI gateway: roadmap generation, mentor chat and
// access to the latest stored roadmap.
type StudyPlanService interface {
	GeneratePlan(ctx context.Context, user models.User, careerGoal, yearlyGoal string) (models.PlanJSON, error)
	Chat(ctx context.Context, message string) (string, error)
	GetPlan(ctx context.Context, username string) (models.Plan, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
