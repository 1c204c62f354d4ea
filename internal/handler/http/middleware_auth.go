package http

import (
	"net/http"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The raw "Authorization" header is resolved via
// [service.AuthService.ResolveToken]; on success the user is stored in the
// request context with [utils.WithUser] before delegating to the next
// handler.
//
// Requests are rejected with 401 and the error envelope when the header is
// absent or malformed ("Missing token") or the token belongs to nobody
// ("Invalid token"). Storage failures answer 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.services.AuthService.ResolveToken(ctx, r.Header.Get("Authorization"))
		if err != nil {
			status, message := responseFromError(err)
			log.Err(err).Int("status", status).Msg("request rejected by auth middleware")
			utils.WriteError(w, message, status)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
