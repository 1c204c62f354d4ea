package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Signup(ctx, creds.Username, creds.Password)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Msg("signup failed")
		utils.WriteError(w, message, status)
		return
	}

	log.Info().Str("username", session.Username).Msg("user signed up")
	utils.WriteJSON(w, models.AuthResponse{
		Status:    models.StatusSuccess,
		AuthToken: session.Token,
		Username:  session.Username,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Msg("login failed")
		utils.WriteError(w, message, status)
		return
	}

	log.Debug().Str("username", session.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{
		Status:    models.StatusSuccess,
		AuthToken: session.Token,
		Username:  session.Username,
	}, http.StatusOK)
}
