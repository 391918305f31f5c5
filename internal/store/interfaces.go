// Package store implements the persistence layer of the gateway: the
// credential store holding user records. PostgreSQL is the shared
// multi-instance backend; SQLite serves single-instance deployments behind
// the same repository interface.
package store

import (
	"context"

	"github.com/MKhiriev/go-measure-gateway/models"
)

// UserRepository is the data-access contract of the credential store.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with
	// server-assigned fields populated. Returns [ErrLoginAlreadyExists]
	// if the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin retrieves the user whose Login matches the one in
	// the input. Returns [ErrNoUserWasFound] on an empty result set.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID retrieves the user with the given primary key.
	// Returns [ErrNoUserWasFound] on an empty result set.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
