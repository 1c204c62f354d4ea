package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "semver", version: "1.0.0"},
		{name: "pre-release with build", version: "v1.2.3-beta+build.42"},
		{name: "default", version: config.DefaultVersion},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestNewServices(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	cfg := &config.StructuredConfig{App: config.App{Version: "2.0.0"}, AI: testAIConfig}
	services, err := NewServices(storages, nil, cfg, logger.Nop())
	require.NoError(t, err)

	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.StudyPlanService)
	assert.Equal(t, "2.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = services.AuthService.Signup(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = services.StudyPlanService.Chat(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrAIClientNotConfigured)
}

func TestNewServices_NoVersion(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(storages, nil, &config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
