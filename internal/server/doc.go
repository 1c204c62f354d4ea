// Package server runs the StudyMate HTTP server: startup, signal handling
// and graceful shutdown bounded by the configured shutdown timeout.
package server
