// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/store"
	"github.com/MKhiriev/go-study-mate/models"
)

type studyPlanService struct {
	completion adapter.CompletionClient
	plans      store.PlanRepository

	model       string
	temperature float64

	logger *logger.Logger
}

// NewStudyPlanService constructs the AI gateway. completion may be nil when
// no API key is configured; generation and chat then fail with
// ErrAIClientNotConfigured while GetPlan keeps working.
func NewStudyPlanService(completion adapter.CompletionClient, plans store.PlanRepository, cfg config.AI, logger *logger.Logger) StudyPlanService {
	model := cfg.Model
	if model == "" {
		model = config.DefaultAIModel
	}
	temperature := config.DefaultAITemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	return &studyPlanService{
		completion:  completion,
		plans:       plans,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// GeneratePlan asks the model for a roadmap, stores it as the user's latest
// plan and returns it as received. The month count is not checked.
func (s *studyPlanService) GeneratePlan(ctx context.Context, user models.User, careerGoal, yearlyGoal string) (models.PlanJSON, error) {
	log := logger.FromContext(ctx)

	if s.completion == nil {
		log.Error().Msg("plan requested without a completion client")
		return nil, ErrAIClientNotConfigured
	}

	temperature := s.temperature
	content, err := s.completion.Complete(ctx, models.CompletionRequest{
		Model: s.model,
		Messages: []models.CompletionMessage{
			{Role: models.RoleSystem, Content: jsonOnlySystemMessage},
			{Role: models.RoleUser, Content: BuildPlanPrompt(careerGoal, yearlyGoal)},
		},
		Temperature: &temperature,
		JSONMode:    true,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("plan completion failed")
		return nil, fmt.Errorf("%w: %w", ErrPlanGenerationFailed, err)
	}

	var plan models.PlanJSON
	if err = json.Unmarshal([]byte(content), &plan); err != nil {
		log.Err(err).Str("username", user.Username).Msg("completion content is not a plan")
		return nil, fmt.Errorf("%w: %w", ErrPlanGenerationFailed, err)
	}
	if len(plan) == 0 {
		log.Error().Str("username", user.Username).Msg("completion returned no monthly entries")
		return nil, fmt.Errorf("%w: empty plan", ErrPlanGenerationFailed)
	}

	err = s.plans.SavePlan(ctx, models.Plan{
		Username:   user.Username,
		CareerGoal: careerGoal,
		YearlyGoal: yearlyGoal,
		Months:     plan,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("saving plan failed")
		return nil, fmt.Errorf("saving plan failed: %w", err)
	}

	return plan, nil
}

// Chat sends message to the mentor persona and returns the reply text.
// The provider's default temperature is used.
func (s *studyPlanService) Chat(ctx context.Context, message string) (string, error) {
	log := logger.FromContext(ctx)

	if s.completion == nil {
		log.Error().Msg("chat requested without a completion client")
		return "", ErrAIClientNotConfigured
	}

	reply, err := s.completion.Complete(ctx, models.CompletionRequest{
		Model: s.model,
		Messages: []models.CompletionMessage{
			{Role: models.RoleSystem, Content: mentorSystemMessage},
			{Role: models.RoleUser, Content: message},
		},
	})
	if err != nil {
		log.Err(err).Msg("chat completion failed")
		return "", fmt.Errorf("%w: %w", ErrChatFailed, err)
	}

	return reply, nil
}

func (s *studyPlanService) GetPlan(ctx context.Context, username string) (models.Plan, error) {
	plan, err := s.plans.GetPlan(ctx, username)
	if err != nil {
		return models.Plan{}, fmt.Errorf("getting plan failed: %w", err)
	}

	return plan, nil
}
