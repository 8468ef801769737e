package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError is an expected, recoverable failure of a domain rule.
// Code identifies the rule (time_conflict, invalid_transition, ...);
// ConflictingIDs is populated for scheduling collisions.
type BusinessError struct {
	Code           string
	ConflictingIDs []string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrTimeConflict(conflictingIDs []string) error {
	return BusinessError{Code: "time_conflict", ConflictingIDs: conflictingIDs}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func ConflictingIDs(err error) []string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.ConflictingIDs
	}
	return nil
}

// IsExclusionConflict reports whether err is a Postgres exclusion
// constraint violation (SQLSTATE 23P01), raised when two transactions
// race the overlap check for the same staff interval.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
