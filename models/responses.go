package models

// Values of the "status" field of the JSON envelopes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the uniform error envelope of every endpoint except chat.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AuthResponse is returned by the signup and login endpoints.
type AuthResponse struct {
	Status    string `json:"status"`
	AuthToken string `json:"auth_token"`
	Username  string `json:"username"`
}

// PlanResponse is returned by the plan generation endpoint.
type PlanResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Plan    PlanJSON `json:"plan"`
}

// StoredPlanResponse is returned when the latest stored plan is requested.
type StoredPlanResponse struct {
	Status     string   `json:"status"`
	CareerGoal string   `json:"career_goal"`
	YearlyGoal string   `json:"yearly_goal"`
	Plan       PlanJSON `json:"plan"`
}

// ChatResponse is the envelope of the chat endpoint, used for both answers
// and failures.
type ChatResponse struct {
	BotMessage string `json:"bot_message"`
}
