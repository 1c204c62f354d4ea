// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime of StudyMate.
//
// It checks that the server answers, runs the terminal UI and forgets the
// session token when the UI exits.
package client
