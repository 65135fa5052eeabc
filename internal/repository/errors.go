package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicate maps Postgres unique_violation on a generated
	// identifier or a unique field such as users.email.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("record not found")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
