package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-registry/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "email", "created_at"}

// buildSelectUsersQuery lists every user ordered by id.
func buildSelectUsersQuery(format sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(format).
		Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery inserts user and returns the stored row.
func buildInsertUserQuery(format sq.PlaceholderFormat, user models.User) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(format).
		Insert(usersTable).
		Columns("username", "email").
		Values(user.Username, user.Email).
		Suffix("RETURNING id, username, email, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
