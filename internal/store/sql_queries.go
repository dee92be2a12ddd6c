package store

import (
	"fmt"

	"github.com/MKhiriev/go-auth-gate/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	columnID    = "id"
	columnEmail = "email"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery selects a single user whose column equals value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
