// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// StudyMate server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The terminal client matches on the same values, so the
// wording is part of the API contract.
package app

const (
	// MsgMissingFields is returned by signup when the username or password
	// is empty.
	MsgMissingFields = "Missing fields"

	// MsgUsernameExists is returned by signup for a taken username.
	MsgUsernameExists = "Username exists"

	// MsgInvalidCredentials is returned by login for an unknown user or a
	// wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgMissingToken is returned by protected endpoints when the
	// Authorization header is absent or not a bearer header.
	MsgMissingToken = "Missing token"

	// MsgInvalidToken is returned when the bearer token is not the current
	// token of any user.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAIClientNotInitialized is returned by AI endpoints when no
	// completion API key is configured.
	MsgAIClientNotInitialized = "AI client not initialized."

	// MsgPlanGenerationFailed is returned when the completion call fails or
	// its output is not a plan.
	MsgPlanGenerationFailed = "Failed to generate AI plan."

	// MsgPlanGenerated accompanies a successfully generated plan.
	MsgPlanGenerated = "Plan generated!"

	// MsgChatFallback is the bot message sent when the chat completion fails.
	MsgChatFallback = "I am having trouble connecting..."

	// MsgPlanNotFound is returned when the user has no stored plan.
	MsgPlanNotFound = "Plan not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
