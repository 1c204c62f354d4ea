package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (PostgreSQL URL or SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "90s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-cors-origins comma separated list of allowed CORS origins
//	-ai-key completion API key
//	-ai-base-url completion API base URL
//	-ai-model completion model identifier
//	-ai-temperature plan generation temperature
//	-ai-timeout completion request timeout (e.g., "60s")
//	-server-url server URL used by the terminal client
//	-client-timeout terminal client request timeout
//	-log-level log level name
//	-version application version
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var requestTimeout, shutdownTimeout time.Duration
	var corsOrigins string
	var aiKey, aiBaseURL, aiModel string
	var aiTemperature *float64
	var aiTimeout time.Duration
	var serverURL string
	var clientTimeout time.Duration
	var logLevel, version string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 90s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.StringVar(&aiKey, "ai-key", "", "Completion API key")
	fs.StringVar(&aiBaseURL, "ai-base-url", "", "Completion API base URL")
	fs.StringVar(&aiModel, "ai-model", "", "Completion model")
	fs.Func("ai-temperature", "Plan generation temperature", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		aiTemperature = &v
		return nil
	})
	fs.DurationVar(&aiTimeout, "ai-timeout", 0, "Completion request timeout (e.g., 60s)")
	fs.StringVar(&serverURL, "server-url", "", "Server URL used by the client")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 2m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(corsOrigins),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		AI: AI{
			APIKey:         aiKey,
			BaseURL:        aiBaseURL,
			Model:          aiModel,
			Temperature:    aiTemperature,
			RequestTimeout: aiTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
