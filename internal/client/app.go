package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run checks the server and hands control to the UI until the user quits or
// the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	version, err := a.services.AppInfoService.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server is not reachable yet")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	err = a.ui.Run(ctx)
	a.services.AuthService.Logout()

	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("ui stopped: %w", err)
	}
}
