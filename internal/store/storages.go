package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/migrations"
)

// ErrNoStorageConfigured is returned by NewStorages when neither a Postgres
// DSN nor a SQLite path is present in the configuration.
var ErrNoStorageConfigured = errors.New("no credential storage configured")

// Storages aggregates the persistence-layer repositories handed to the
// service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages opens the configured credential store backend and wires the
// repositories on top of it. PostgreSQL (with goose migrations applied) is
// preferred; the SQLite single-instance store is used when only a SQLite
// path is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err := migrations.Migrate(db.DB); err != nil {
			return nil, err
		}

		return db, nil

	case cfg.SQLite.Path != "":
		log.Warn().Msg("using single-instance SQLite credential store")
		return NewConnectSQLite(ctx, cfg.SQLite, log)

	default:
		return nil, ErrNoStorageConfigured
	}
}
