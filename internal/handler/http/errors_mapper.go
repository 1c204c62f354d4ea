package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is checked in order; the first matching sentinel wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingFields},
	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameExists},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrMissingToken, http.StatusUnauthorized, app.MsgMissingToken},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrAIClientNotConfigured, http.StatusInternalServerError, app.MsgAIClientNotInitialized},
	{service.ErrPlanGenerationFailed, http.StatusInternalServerError, app.MsgPlanGenerationFailed},
	{service.ErrChatFailed, http.StatusInternalServerError, app.MsgChatFallback},

	{store.ErrPlanNotFound, http.StatusNotFound, app.MsgPlanNotFound},
}

// responseFromError returns the status code and envelope message for err.
// Unknown errors, storage failures included, become 500 "internal server
// error" so no internals leak to clients.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
