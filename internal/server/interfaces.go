package server

// Server is a transport server with a blocking run loop.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM, then shuts down.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests within the configured shutdown timeout.
	Shutdown()
}
