// Package sqlerr classifies database driver errors into a closed set of
// kinds, so handlers can map store failures to HTTP semantics without
// inspecting raw SQLSTATE codes at every call site.
package sqlerr

import (
	"errors"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind identifies a category of store failure.
type Kind int

const (
	// KindUnknown covers any failure not covered by a more specific kind.
	KindUnknown Kind = iota

	// KindUniqueViolation means a unique constraint rejected a write.
	KindUniqueViolation

	// KindForeignKeyViolation means referential integrity rejected a write.
	KindForeignKeyViolation

	// KindConnectionRefused means the database was unreachable.
	KindConnectionRefused
)

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Error tags an underlying store error with its classified kind.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Wrap classifies err and tags it with its kind. A nil error stays nil, and
// an already-classified error is returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}

	return &Error{Kind: classify(err), cause: err}
}

// KindOf reports the classified kind of err, walking the wrap chain.
// Unclassified errors report KindUnknown.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return KindUniqueViolation
		case codeForeignKeyViolation:
			return KindForeignKeyViolation
		}
		return KindUnknown
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return KindConnectionRefused
	}

	return KindUnknown
}
