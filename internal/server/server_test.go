package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/handler"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/service"
)

func TestNewServer_NoHTTPAddress(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: time.Second,
	}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, 30*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 30*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, time.Second, s.shutdownTimeout)
	assert.NotNil(t, s.httpServer.server.ErrorLog)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer:      newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())

	assert.Error(t, err)
}
