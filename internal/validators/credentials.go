package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-mate/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the username; it must be non-empty after trimming.
	FieldUsername = "username"

	// FieldPassword targets the password; it must be non-empty as given.
	FieldPassword = "password"
)

// CredentialsValidator implements [Validator] for [models.Credentials].
// It accepts both value and pointer forms.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks the requested fields of obj, or all of them when fields
// is empty. Errors of every failing field are reported together.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return fmt.Errorf("%w: nil credentials", ErrUnsupportedType)
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				errs = append(errs, ErrEmptyUsername)
			}
		case FieldPassword:
			if creds.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return joinErrors(errs)
}
