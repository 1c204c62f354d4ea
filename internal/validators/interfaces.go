// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input checks shared by the auth services.
//
// A [Validator] inspects a value and reports every broken rule at once, so
// callers can show the user the complete list. Passing field names limits
// the check to those fields.
package validators

import "context"

// Validator checks obj and returns the joined errors of all failed rules.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
