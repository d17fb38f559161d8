package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
// The assignment ledger relies on it: the insert attempt itself is the
// uniqueness check, so concurrent inserts for the same pair cannot race.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
