package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/models"
)

type clientStudyPlanService struct {
	adapter adapter.ServerAdapter
}

func NewClientStudyPlanService(serverAdapter adapter.ServerAdapter) ClientStudyPlanService {
	return &clientStudyPlanService{adapter: serverAdapter}
}

func (s *clientStudyPlanService) GeneratePlan(ctx context.Context, req models.PlanRequest) (models.PlanJSON, error) {
	if s.adapter.Token() == "" {
		return nil, ErrMissingToken
	}

	plan, err := s.adapter.GeneratePlan(ctx, models.PlanRequest{
		CareerGoal: strings.TrimSpace(req.CareerGoal),
		YearlyGoal: strings.TrimSpace(req.YearlyGoal),
	})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return plan, nil
}

func (s *clientStudyPlanService) LatestPlan(ctx context.Context) (models.StoredPlanResponse, error) {
	if s.adapter.Token() == "" {
		return models.StoredPlanResponse{}, ErrMissingToken
	}

	plan, err := s.adapter.GetPlan(ctx)
	if err != nil {
		return models.StoredPlanResponse{}, mapAdapterError(err)
	}

	return plan, nil
}

func (s *clientStudyPlanService) Chat(ctx context.Context, message string) (string, error) {
	reply, err := s.adapter.Chat(ctx, message)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return reply, nil
}

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if version == "" {
		return "", ErrVersionIsNotSpecified
	}

	return version, nil
}
