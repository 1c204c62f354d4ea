package models

// PlanRequest is the body of POST /generate_plan.
type PlanRequest struct {
	CareerGoal string `json:"career_goal"`
	YearlyGoal string `json:"yearly_goal"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}
