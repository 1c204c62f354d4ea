package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/models"
)

// planRepository is the SQL-backed implementation of [PlanRepository]. The
// roadmap is stored as JSON text in the "plan" column.
type planRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPlanRepository(db *DB, logger *logger.Logger) PlanRepository {
	logger.Debug().Msg("creating plan repository")
	return &planRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planRepository) SavePlan(ctx context.Context, plan models.Plan) error {
	log := logger.FromContext(ctx)

	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	planJSON, err := json.Marshal(plan.Months)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPlan, err)
	}

	query, args, err := buildSavePlanQuery(r.db.builder, plan, string(planJSON))
	if err != nil {
		log.Err(err).Str("func", "*planRepository.SavePlan").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*planRepository.SavePlan").
			Str("username", plan.Username).
			Msg("error saving plan")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *planRepository) GetPlan(ctx context.Context, username string) (models.Plan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPlanQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*planRepository.GetPlan").Msg("error building query")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*planRepository.GetPlan").Msg("error: row is nil")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var (
		plan     models.Plan
		planJSON string
	)
	if err = row.Scan(&plan.Username, &plan.CareerGoal, &plan.YearlyGoal, &planJSON, &plan.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Plan{}, ErrPlanNotFound
		}

		log.Err(err).Str("func", "*planRepository.GetPlan").Msg("error: scanning error")
		return models.Plan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(planJSON), &plan.Months); err != nil {
		return models.Plan{}, fmt.Errorf("%w: %w", ErrEncodingPlan, err)
	}

	return plan, nil
}
