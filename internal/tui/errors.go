// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

var errorTexts = []struct {
	err  error
	text string
}{
	{service.ErrInvalidDataProvided, "Username and password are required"},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{store.ErrUsernameAlreadyExists, "This username is already taken"},
	{service.ErrMissingToken, "Your session has ended, please log in again"},
	{service.ErrInvalidToken, "Your session has ended, please log in again"},
	{store.ErrPlanNotFound, "You have not generated a plan yet"},
	{service.ErrAIClientNotConfigured, "The server has no AI key configured"},
	{service.ErrPlanGenerationFailed, app.MsgPlanGenerationFailed},
	{service.ErrChatFailed, app.MsgChatFallback},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return e.text
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The network is down or the server is unreachable"
	}

	return err.Error()
}

// sessionExpired reports whether err means the stored token is no longer
// accepted and the user has to log in again.
func sessionExpired(err error) bool {
	return errors.Is(err, service.ErrMissingToken) || errors.Is(err, service.ErrInvalidToken)
}
