package utils

import (
	"errors"
	"strings"
)

// ErrInvalidAuthorizationHeader is returned for headers not of the form
// "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

const bearerScheme = "Bearer"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
