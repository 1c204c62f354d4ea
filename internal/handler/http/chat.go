package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

// chat is public. Every outcome, failures included, is written as
// {"bot_message": ...} so the client can always print the text.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteJSON(w, models.ChatResponse{BotMessage: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	reply, err := h.services.StudyPlanService.Chat(ctx, req.Message)
	if err != nil {
		message := app.MsgChatFallback
		if errors.Is(err, service.ErrAIClientNotConfigured) {
			message = app.MsgAIClientNotInitialized
		}
		log.Err(err).Msg("chat failed")
		utils.WriteJSON(w, models.ChatResponse{BotMessage: message}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{BotMessage: reply}, http.StatusOK)
}
