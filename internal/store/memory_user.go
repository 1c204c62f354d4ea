// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/models"
)

// memoryUserRepository is the in-process implementation of [UserRepository].
//
// users is the primary index; tokens maps every current token back to its
// owner. Both maps are only touched under mu, so a token never resolves to
// a user whose current token has already changed.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	tokens map[string]string

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
// Its contents are lost when the process exits.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[string]models.User),
		tokens: make(map[string]string),
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. The existence check and the insert
// happen under one write lock, so of two concurrent signups with the same
// username exactly one succeeds.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		logger.FromContext(ctx).Debug().
			Str("func", "*memoryUserRepository.CreateUser").
			Str("username", user.Username).
			Msg("username already exists")
		return ErrUsernameAlreadyExists
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	r.users[user.Username] = user
	if user.AuthToken != "" {
		r.tokens[user.AuthToken] = user.Username
	}

	return nil
}

// FindUserByUsername implements [UserRepository].
func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// FindUserByToken implements [UserRepository].
func (r *memoryUserRepository) FindUserByToken(_ context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoUserWasFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	username, ok := r.tokens[token]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[username], nil
}

// UpdateAuthToken implements [UserRepository].
func (r *memoryUserRepository) UpdateAuthToken(_ context.Context, username, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return ErrNoUserWasFound
	}

	if user.AuthToken != "" {
		delete(r.tokens, user.AuthToken)
	}

	user.AuthToken = token
	r.users[username] = user
	if token != "" {
		r.tokens[token] = username
	}

	return nil
}
