package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"employees-api/internal/apperror"
)

const (
	duplicateEmail   = "an employee with this email already exists"
	notNullViolation = "Missing required fields"
)

// Extended SQLite result codes, see https://www.sqlite.org/rescode.html.
const (
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// sqliteError is implemented by the pure Go SQLite driver's error type.
type sqliteError interface {
	error
	Code() int
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.New(apperror.CodeConflict, duplicateEmail)
		case "23502":
			return apperror.New(apperror.CodeValidation, notNullViolation)
		}
	}

	var liteErr sqliteError
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return apperror.New(apperror.CodeConflict, duplicateEmail)
		case sqliteConstraintNotNull:
			return apperror.New(apperror.CodeValidation, notNullViolation)
		}
	}

	return err
}
