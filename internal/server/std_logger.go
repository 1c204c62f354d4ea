package server

import (
	stdlog "log"

	"github.com/MKhiriev/go-study-mate/internal/logger"
)

// newStdLogger routes net/http's internal errors (TLS handshakes, panics
// in handlers) into the zerolog output.
func newStdLogger(logger *logger.Logger) *stdlog.Logger {
	l := logger.With().Str("component", "net/http").Logger()
	return stdlog.New(l, "", 0)
}
