package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/crypto"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/store"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as salted argon2id digests; tokens are opaque random
// strings kept on the user record, one active token per user.
type authService struct {
	userRepository store.UserRepository

	hasher crypto.PasswordHasher
	tokens crypto.TokenGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, password hasher and token generator.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens crypto.TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Signup creates a new account and issues its first token.
//
// Returns:
//   - ErrInvalidDataProvided if the trimmed username or the password is empty.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) Signup(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid signup data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	token, err := a.tokens.Generate()
	if err != nil {
		log.Err(err).Str("username", username).Msg("token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		AuthToken:    token,
		CreatedAt:    time.Now().UTC(),
	}
	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.Session{Token: token, Username: username}, nil
}

// Login checks the password and replaces the user's token with a new one,
// which invalidates the previous token.
//
// Every credential problem, including empty fields and an unknown username,
// is reported as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Warn().Str("username", username).Msg("login with empty credentials")
		return models.Session{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("username", username).Msg("login for unknown user")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", username).Msg("stored password hash is unreadable")
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Generate()
	if err != nil {
		log.Err(err).Str("username", username).Msg("token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.UpdateAuthToken(ctx, user.Username, token); err != nil {
		log.Err(err).Str("username", username).Msg("token update failed")
		return models.Session{}, fmt.Errorf("token update failed: %w", err)
	}

	return models.Session{Token: token, Username: user.Username}, nil
}

// ResolveToken returns the user whose current token is carried by the
// "Bearer <token>" header.
//
// Returns ErrMissingToken for an absent or malformed header and
// ErrInvalidToken when no user holds the token.
func (a *authService) ResolveToken(ctx context.Context, authorizationHeader string) (models.User, error) {
	token, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.User{}, ErrMissingToken
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidToken
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}
