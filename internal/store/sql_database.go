package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
)

// DB wraps a database/sql connection together with the driver-specific
// pieces repositories need: a squirrel statement builder configured with the
// driver's placeholder format and a unique-violation classifier.
type DB struct {
	*sql.DB

	builder           sq.StatementBuilderType
	isUniqueViolation func(error) bool
	logger            *logger.Logger
}

// Builder returns the squirrel statement builder configured for this
// connection's placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
