// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-mate/internal/app"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

// generatePlan asks the AI gateway for a new 12-month roadmap for the
// authenticated user. Goals are passed through as given, empty ones included.
func (h *Handler) generatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	plan, err := h.services.StudyPlanService.GeneratePlan(ctx, user, req.CareerGoal, req.YearlyGoal)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Str("username", user.Username).Int("status", status).Msg("plan generation failed")
		utils.WriteError(w, message, status)
		return
	}

	utils.WriteJSON(w, models.PlanResponse{
		Status:  models.StatusSuccess,
		Message: app.MsgPlanGenerated,
		Plan:    plan,
	}, http.StatusOK)
}

// getPlan returns the latest roadmap of the authenticated user.
func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	plan, err := h.services.StudyPlanService.GetPlan(ctx, user.Username)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Str("username", user.Username).Int("status", status).Msg("plan lookup failed")
		utils.WriteError(w, message, status)
		return
	}

	utils.WriteJSON(w, models.StoredPlanResponse{
		Status:     models.StatusSuccess,
		CareerGoal: plan.CareerGoal,
		YearlyGoal: plan.YearlyGoal,
		Plan:       plan.Months,
	}, http.StatusOK)
}
