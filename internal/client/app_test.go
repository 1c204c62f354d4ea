package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/mock"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/tui"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	app, err := NewApp(service.NewClientServices(serverAdapter), ui, logger.Nop())
	require.NoError(t, err)
	return app, serverAdapter
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		versionErr error
		uiErr      error
		wantErr    bool
	}{
		{name: "clean exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "server unreachable", versionErr: errors.New("connection refused")},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app, serverAdapter := newTestApp(t, ui)

			serverAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", tt.versionErr)
			serverAdapter.EXPECT().SetToken("")

			err := app.run(context.Background())

			assert.Equal(t, 1, ui.calls)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
