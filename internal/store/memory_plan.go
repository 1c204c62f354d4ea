package store

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/models"
)

type memoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]models.Plan

	logger *logger.Logger
}

// NewMemoryPlanRepository constructs an empty in-memory [PlanRepository].
func NewMemoryPlanRepository(logger *logger.Logger) PlanRepository {
	logger.Debug().Msg("creating in-memory plan repository")
	return &memoryPlanRepository{
		plans:  make(map[string]models.Plan),
		logger: logger,
	}
}

func (r *memoryPlanRepository) SavePlan(_ context.Context, plan models.Plan) error {
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	plan.Months = maps.Clone(plan.Months)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[plan.Username] = plan
	return nil
}

func (r *memoryPlanRepository) GetPlan(_ context.Context, username string) (models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[username]
	if !ok {
		return models.Plan{}, ErrPlanNotFound
	}
	plan.Months = maps.Clone(plan.Months)

	return plan, nil
}
