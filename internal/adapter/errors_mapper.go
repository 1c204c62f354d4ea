package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into one of the sentinel errors.
// The human-readable part is taken from the JSON envelope when present.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, msg)
	default:
		return fmt.Errorf("http %d: %s", status, msg)
	}
}

// responseMessage extracts the message of the known error envelopes:
//
//	{"status": "error", "message": "..."}   StudyMate API
//	{"bot_message": "..."}                  StudyMate chat
//	{"error": {"message": "..."}}           OpenAI-compatible providers
//
// Anything else is returned as trimmed text.
func responseMessage(body []byte) string {
	var envelope struct {
		Message    string `json:"message"`
		BotMessage string `json:"bot_message"`
		Error      struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case envelope.BotMessage != "":
			return envelope.BotMessage
		case envelope.Error.Message != "":
			return envelope.Error.Message
		}
	}

	return strings.TrimSpace(string(body))
}

// ResponseMessage returns the message part of an error produced by
// mapHTTPError, i.e. everything after the first ": ".
func ResponseMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
