package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Signup(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.adapter.Signup(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}
