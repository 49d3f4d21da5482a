package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrReferentialIntegrity signals a show referencing a missing artist or venue.
	ErrReferentialIntegrity = errors.New("referenced record does not exist")
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrInUse indicates a record cannot be deleted while shows reference it.
	ErrInUse = errors.New("record is referenced by shows")
	// ErrStorage wraps transaction, connection and driver failures.
	ErrStorage = errors.New("storage fault")
	// ErrVenueNotFound signals a missing venue. It wraps ErrNotFound.
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	// ErrArtistNotFound signals a missing artist. It wraps ErrNotFound.
	ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)
)

const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// fault classifies a driver error raised while performing op.
func fault(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrReferentialIntegrity, pgErr.ConstraintName)
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrValidation, pgErr.ColumnName)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}
