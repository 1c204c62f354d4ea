package service

import "fmt"

const (
	// jsonOnlySystemMessage forces the model to answer with one JSON object.
	jsonOnlySystemMessage = "You are a JSON-only API. You must return a valid JSON object based on the user's request, with no other text, markdown, or explanations."

	// mentorSystemMessage is the persona of the chat endpoint.
	mentorSystemMessage = "You are StudyMate, a helpful and encouraging AI mentor for students."

	planPromptTemplate = `Act as a strict career coach. Create a 12-month study roadmap for a student.
Career Goal: %s
Yearly Goal: %s

The JSON structure must be: {"1": {"monthly_goal": "...", "weekly": ["Week 1 task", "Week 2 task", "Week 3 task", "Week 4 task"]}, "2": {...}, ..., "12": {...}}`
)

// BuildPlanPrompt returns the user prompt asking for a 12-month roadmap
// keyed "1".."12" with one monthly goal and four weekly tasks per month.
func BuildPlanPrompt(careerGoal, yearlyGoal string) string {
	return fmt.Sprintf(planPromptTemplate, careerGoal, yearlyGoal)
}
