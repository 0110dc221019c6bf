package repositories

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation marks a write rejected by a unique index, e.g. two
// concurrent registrations racing on the same username or a draft rename
// colliding with another draft's title.
var ErrUniqueViolation = errors.New("unique constraint violation")

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUniqueViolation
	}
	return err
}
