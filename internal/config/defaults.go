package config

import "time"

// Default values applied to every field left empty by env, flags and JSON.
const (
	DefaultHTTPAddress     = "localhost:5000"
	DefaultRequestTimeout  = 90 * time.Second
	DefaultShutdownTimeout = 5 * time.Second

	DefaultAIBaseURL        = "https://api.groq.com/openai/v1"
	DefaultAIModel          = "llama-3.1-8b-instant"
	DefaultAITemperature    = 0.7
	DefaultAIRequestTimeout = 60 * time.Second

	DefaultAdapterAddress        = "http://127.0.0.1:5000"
	DefaultAdapterRequestTimeout = 2 * time.Minute

	DefaultVersion  = "dev"
	DefaultLogLevel = "debug"
)

// DefaultAllowedOrigins allows any origin, which suits a local development
// setup of the browser frontend.
var DefaultAllowedOrigins = []string{"*"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigins:  DefaultAllowedOrigins,
		},
		AI: AI{
			BaseURL:        DefaultAIBaseURL,
			Model:          DefaultAIModel,
			Temperature:    Float64(DefaultAITemperature),
			RequestTimeout: DefaultAIRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 {
	return &v
}
