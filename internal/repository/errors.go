package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
)

// Postgres unique_violation SQLSTATE.
const pgUniqueViolation = "23505"

// translateError maps storage-level failures onto the API error taxonomy.
// A unique-index violation becomes Conflict so constraint backstops (unique
// category name, one open borrow per book) surface the same way as the
// application-level checks.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.ErrConflict
	}
	return err
}
