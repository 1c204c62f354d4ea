// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// StudyMate REST API. Cross-cutting concerns such as authentication, request
// tracing, access logging, CORS and response compression are handled in this
// package before requests are delegated to the service layer.
//
// Routes served by [Handler.Init]:
//
//	POST /signup          {username, password}       -> 201 {status, auth_token, username}
//	POST /login           {username, password}       -> 200 {status, auth_token, username}
//	POST /generate_plan   {career_goal, yearly_goal} -> 200 {status, message, plan}   (Bearer)
//	GET  /plan                                       -> 200 {status, career_goal, yearly_goal, plan} (Bearer)
//	POST /api/chat        {message}                  -> 200 {bot_message}
//	GET  /api/version                                -> 200 text/plain
//
// Failures use {"status": "error", "message": ...}, except chat which keeps
// {"bot_message": ...} for every outcome.
package http
