// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when neither an address nor handlers
// are available to build the HTTP server.
var errNoServersAreCreated = errors.New("no servers are created")
