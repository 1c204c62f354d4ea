package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-mate/models"
)

var (
	userColumns = []string{"username", "password_hash", "auth_token", "created_at"}
	planColumns = []string{"username", "career_goal", "yearly_goal", "plan", "created_at"}
)

// savePlanConflictClause turns the plan insert into an upsert. Both
// PostgreSQL and SQLite (3.24+) understand this form.
const savePlanConflictClause = `ON CONFLICT (username) DO UPDATE SET
	career_goal = excluded.career_goal,
	yearly_goal = excluded.yearly_goal,
	plan = excluded.plan,
	created_at = excluded.created_at`

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.Username, user.PasswordHash, nullableString(user.AuthToken), user.CreatedAt).
		ToSql()
}

// buildFindUserQuery selects a single user by an exact match on column.
func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildUpdateAuthTokenQuery(b sq.StatementBuilderType, username, token string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("auth_token", nullableString(token)).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSavePlanQuery(b sq.StatementBuilderType, plan models.Plan, planJSON string) (string, []any, error) {
	return b.Insert(models.Plan{}.TableName()).
		Columns(planColumns...).
		Values(plan.Username, plan.CareerGoal, plan.YearlyGoal, planJSON, plan.CreatedAt).
		Suffix(savePlanConflictClause).
		ToSql()
}

func buildGetPlanQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(planColumns...).
		From(models.Plan{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// nullableString stores empty strings as NULL so the unique index on
// auth_token ignores users without a token.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// userRow is the scan target of userColumns.
type userRow struct {
	username     string
	passwordHash string
	authToken    sql.NullString
	createdAt    time.Time
}

func (r *userRow) dest() []any {
	return []any{&r.username, &r.passwordHash, &r.authToken, &r.createdAt}
}

func (r *userRow) toModel() models.User {
	return models.User{
		Username:     r.username,
		PasswordHash: r.passwordHash,
		AuthToken:    r.authToken.String,
		CreatedAt:    r.createdAt,
	}
}
