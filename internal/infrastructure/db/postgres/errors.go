package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// UniqueViolation reports whether err is a unique-constraint violation and,
// if so, which constraint was hit. The constraints are the authoritative
// uniqueness guard; pre-checks in the service layer are only optimistic.
func UniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func IsPgUniqueViolation(err error) bool {
	_, ok := UniqueViolation(err)
	return ok
}
