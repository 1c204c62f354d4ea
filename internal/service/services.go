package service

import (
	"fmt"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/crypto"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

type Services struct {
	AuthService      AuthService
	StudyPlanService StudyPlanService
	AppInfoService   AppInfoService
}

// NewServices wires the server-side services. completion may be nil.
func NewServices(storages *store.Storages, completion adapter.CompletionClient, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	auth := NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), crypto.NewTokenGenerator(), logger)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(auth),
		StudyPlanService: NewStudyPlanService(completion, storages.PlanRepository, cfg.AI, logger),
		AppInfoService:   appInfo,
	}, nil
}
