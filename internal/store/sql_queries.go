package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-measure-gateway/models"
)

// userColumns is the canonical column order scanned into models.User by the
// repository; every query below returns columns in exactly this order.
var userColumns = []string{
	"user_id", "login", "email", "auth_hash", "auth_salt", "is_active", "created_at",
}

// buildCreateUser builds the INSERT with a RETURNING clause so the caller
// receives the canonical database representation of the new account.
func buildCreateUser(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	return builder.
		Insert(user.TableName()).
		Columns("login", "email", "auth_hash", "auth_salt", "is_active").
		Values(user.Login, user.Email, user.AuthHash, user.AuthSalt, user.Active).
		Suffix("RETURNING user_id, login, email, auth_hash, auth_salt, is_active, created_at").
		ToSql()
}

// buildFindUserByLogin builds the SELECT of a single user record by login.
func buildFindUserByLogin(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(user.TableName()).
		Where(sq.Eq{"login": user.Login}).
		ToSql()
}

// buildFindUserByID builds the SELECT of a single user record by primary key.
func buildFindUserByID(builder sq.StatementBuilderType, userID int64) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
