// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoUserInContext is logged when a protected handler runs without the
// user the auth middleware stores. It means the route was registered
// outside the authorized group.
var ErrNoUserInContext = errors.New("no authenticated user in request context")
