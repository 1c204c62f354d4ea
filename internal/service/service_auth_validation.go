// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-mate/internal/validators"
	"github.com/MKhiriev/go-study-mate/models"
)

// AuthValidationService runs the credentials validator before signup and
// passes every other call through to the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, username, password string) (models.Session, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, username, password)
}

// Login is not validated: empty credentials must surface as
// ErrInvalidCredentials, which the inner service already does.
func (v *AuthValidationService) Login(ctx context.Context, username, password string) (models.Session, error) {
	return v.inner.Login(ctx, username, password)
}

func (v *AuthValidationService) ResolveToken(ctx context.Context, authorizationHeader string) (models.User, error) {
	return v.inner.ResolveToken(ctx, authorizationHeader)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
