package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// Password carries the plain-text secret on inbound register/login
	// requests only. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// AuthHash is the Argon2id digest of the user's secret, hex-encoded.
	// This is the only credential material stored at rest.
	AuthHash string `json:"-"`

	// AuthSalt is the per-user random salt used to derive AuthHash,
	// hex-encoded.
	AuthSalt string `json:"-"`

	// Active reports whether the account may authenticate. Inactive
	// accounts are rejected at login with the same opaque error as a wrong
	// password.
	Active bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
