package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials to /signup and
// stores the auth_token of the 201 response.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/signup", creds)
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login and
// stores the auth_token of the 200 response.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/login", creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (models.Session, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if result.AuthToken == "" {
		return models.Session{}, fmt.Errorf("%s response: empty auth token", strings.TrimPrefix(path, "/"))
	}

	h.SetToken(result.AuthToken)
	return models.Session{Token: result.AuthToken, Username: result.Username}, nil
}

// GeneratePlan implements [ServerAdapter]. It POSTs the goals to
// /generate_plan with the stored bearer token.
func (h *httpServerAdapter) GeneratePlan(ctx context.Context, req models.PlanRequest) (models.PlanJSON, error) {
	var result models.PlanResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/generate_plan")
	if err != nil {
		return nil, fmt.Errorf("generate plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Plan, nil
}

// GetPlan implements [ServerAdapter].
func (h *httpServerAdapter) GetPlan(ctx context.Context) (models.StoredPlanResponse, error) {
	var result models.StoredPlanResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/plan")
	if err != nil {
		return models.StoredPlanResponse{}, fmt.Errorf("get plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredPlanResponse{}, err
	}

	return result, nil
}

// Chat implements [ServerAdapter]. The chat endpoint is public; the token is
// not sent.
func (h *httpServerAdapter) Chat(ctx context.Context, message string) (string, error) {
	var result models.ChatResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChatRequest{Message: message}).
		SetResult(&result).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.BotMessage, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
