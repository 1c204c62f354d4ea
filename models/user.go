// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier and the primary key of the
	// credential store.
	Username string `json:"username"`

	// PasswordHash stores the salted argon2id digest of the user's password in
	// PHC string format. It is never serialized.
	PasswordHash string `json:"-"`

	// AuthToken is the single active bearer token of the user. It is replaced
	// on every login, which invalidates the previously issued one.
	// Empty means no token was issued yet.
	AuthToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair sent to the signup and login
// endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the result of a successful signup or login: the freshly issued
// bearer token and the username it belongs to.
type Session struct {
	Token    string `json:"auth_token"`
	Username string `json:"username"`
}

// String returns the bearer token. It implements the [fmt.Stringer] interface.
func (s Session) String() string {
	return s.Token
}
