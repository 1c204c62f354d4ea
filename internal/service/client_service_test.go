// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/mock"
	"github.com/MKhiriev/go-study-mate/internal/store"
	"github.com/MKhiriev/go-study-mate/models"
)

func transportErr(sentinel error, msg string) error {
	return fmt.Errorf("%w: %s", sentinel, msg)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "missing fields", err: transportErr(adapter.ErrBadRequest, app.MsgMissingFields), want: ErrInvalidDataProvided},
		{name: "invalid json", err: transportErr(adapter.ErrBadRequest, app.MsgInvalidJSON), want: ErrInvalidDataProvided},
		{name: "invalid credentials", err: transportErr(adapter.ErrUnauthorized, app.MsgInvalidCredentials), want: ErrInvalidCredentials},
		{name: "missing token", err: transportErr(adapter.ErrUnauthorized, app.MsgMissingToken), want: ErrMissingToken},
		{name: "invalid token", err: transportErr(adapter.ErrUnauthorized, app.MsgInvalidToken), want: ErrInvalidToken},
		{name: "username exists", err: transportErr(adapter.ErrConflict, app.MsgUsernameExists), want: store.ErrUsernameAlreadyExists},
		{name: "plan not found", err: transportErr(adapter.ErrNotFound, app.MsgPlanNotFound), want: store.ErrPlanNotFound},
		{name: "ai not configured", err: transportErr(adapter.ErrUpstreamUnavailable, app.MsgAIClientNotInitialized), want: ErrAIClientNotConfigured},
		{name: "plan failed", err: transportErr(adapter.ErrUpstreamUnavailable, app.MsgPlanGenerationFailed), want: ErrPlanGenerationFailed},
		{name: "chat fallback", err: transportErr(adapter.ErrUpstreamUnavailable, app.MsgChatFallback), want: ErrChatFailed},
		{name: "unknown message keeps transport error", err: transportErr(adapter.ErrNotFound, "404 page not found"), want: adapter.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.err), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

// ─────────────────────────────────────────────
// ClientAuthService
// ─────────────────────────────────────────────

func TestClientAuthService_SignupStoresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(server)

	creds := models.Credentials{Username: "alice", Password: "pw"}
	server.EXPECT().Signup(gomock.Any(), creds).Return(models.Session{Token: "tok", Username: "alice"}, nil)
	server.EXPECT().SetToken("tok")

	session, err := svc.Signup(context.Background(), models.Credentials{Username: " alice ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
}

func TestClientAuthService_SignupConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(server)

	server.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.Session{}, transportErr(adapter.ErrConflict, app.MsgUsernameExists))

	_, err := svc.Signup(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestClientAuthService_EmptyFieldsStayLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientAuthService(mock.NewMockServerAdapter(ctrl))

	_, err := svc.Signup(context.Background(), models.Credentials{Username: "  ", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_LoginAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(server)

	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{Token: "tok", Username: "alice"}, nil),
		server.EXPECT().SetToken("tok"),
		server.EXPECT().SetToken(""),
	)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	svc.Logout()
}

func TestClientAuthService_LoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(server)

	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, transportErr(adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// ClientStudyPlanService
// ─────────────────────────────────────────────

func TestClientStudyPlanService_GeneratePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStudyPlanService(server)

	want := models.PlanJSON{"1": {MonthlyGoal: "Basics", Weekly: []string{"a", "b", "c", "d"}}}
	server.EXPECT().Token().Return("tok")
	server.EXPECT().
		GeneratePlan(gomock.Any(), models.PlanRequest{CareerGoal: "Data Scientist", YearlyGoal: "Python"}).
		Return(want, nil)

	plan, err := svc.GeneratePlan(context.Background(), models.PlanRequest{CareerGoal: " Data Scientist", YearlyGoal: "Python "})

	require.NoError(t, err)
	assert.Equal(t, want, plan)
}

func TestClientStudyPlanService_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStudyPlanService(server)

	server.EXPECT().Token().Return("").Times(2)

	_, err := svc.GeneratePlan(context.Background(), models.PlanRequest{})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.LatestPlan(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClientStudyPlanService_LatestPlanNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStudyPlanService(server)

	server.EXPECT().Token().Return("tok")
	server.EXPECT().GetPlan(gomock.Any()).Return(models.StoredPlanResponse{}, transportErr(adapter.ErrNotFound, app.MsgPlanNotFound))

	_, err := svc.LatestPlan(context.Background())

	assert.ErrorIs(t, err, store.ErrPlanNotFound)
}

func TestClientStudyPlanService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStudyPlanService(server)

	gomock.InOrder(
		server.EXPECT().Chat(gomock.Any(), "hi").Return("hello", nil),
		server.EXPECT().Chat(gomock.Any(), "hi").Return("", transportErr(adapter.ErrUpstreamUnavailable, app.MsgChatFallback)),
	)

	reply, err := svc.Chat(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)

	_, err = svc.Chat(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrChatFailed)
}

func TestClientAppInfoService_ServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAppInfoService(server)
	netErr := errors.New("connection refused")

	gomock.InOrder(
		server.EXPECT().Version(gomock.Any()).Return("1.4.0", nil),
		server.EXPECT().Version(gomock.Any()).Return("", nil),
		server.EXPECT().Version(gomock.Any()).Return("", netErr),
	)

	version, err := svc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)

	_, err = svc.ServerVersion(context.Background())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = svc.ServerVersion(context.Background())
	assert.ErrorIs(t, err, netErr)
}
