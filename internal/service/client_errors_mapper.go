// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server message decides between errors sharing a
// status; unknown messages keep the transport error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ResponseMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgMissingFields, app.MsgInvalidJSON:
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgMissingToken:
			return ErrMissingToken
		case app.MsgInvalidToken:
			return ErrInvalidToken
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUsernameExists {
			return store.ErrUsernameAlreadyExists
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgPlanNotFound {
			return store.ErrPlanNotFound
		}

	case errors.Is(err, adapter.ErrUpstreamUnavailable):
		switch msg {
		case app.MsgAIClientNotInitialized:
			return ErrAIClientNotConfigured
		case app.MsgPlanGenerationFailed:
			return ErrPlanGenerationFailed
		case app.MsgChatFallback:
			return ErrChatFailed
		}
	}

	return err
}
