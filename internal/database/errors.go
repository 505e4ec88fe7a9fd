package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateEntry is returned when a unique constraint rejects a write.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrForeignKeyViolation is returned when a write references a missing
	// row or a delete is blocked by a restricting reference.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	CodeNotNullViolation    = "23502"
	CodeForeignKeyViolation = "23503"
	CodeUniqueViolation     = "23505"
	CodeCheckViolation      = "23514"
)

// DuplicateEntryError carries a message fit for the operator.
type DuplicateEntryError struct {
	Message string
	Err     error
}

func (e *DuplicateEntryError) Error() string {
	return e.Message
}

func (e *DuplicateEntryError) Unwrap() error {
	return e.Err
}

func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// ForeignKeyViolationError carries a message fit for the operator.
type ForeignKeyViolationError struct {
	Message string
	Err     error
}

func (e *ForeignKeyViolationError) Error() string {
	return e.Message
}

func (e *ForeignKeyViolationError) Unwrap() error {
	return e.Err
}

func (e *ForeignKeyViolationError) Is(target error) bool {
	return target == ErrForeignKeyViolation
}

// DatabaseError wraps any other persistence failure.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// SQLState extracts the SQLSTATE code from a driver error. SQLite extended
// result codes are mapped onto their PostgreSQL equivalents, including the
// trigger code SQLite reports for a restricted delete. It returns ""
// when the error carries no constraint code.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return CodeUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return CodeForeignKeyViolation
		case sqlite3.ErrConstraintNotNull:
			return CodeNotNullViolation
		case sqlite3.ErrConstraintCheck:
			return CodeCheckViolation
		case sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT fires as a trigger constraint.
			if strings.Contains(liteErr.Error(), "FOREIGN KEY") {
				return CodeForeignKeyViolation
			}
		}
	}
	return ""
}

// Messages used by Classify for the two constraint kinds the operator can fix.
type Messages struct {
	Duplicate  string
	ForeignKey string
}

// Classify turns a driver error into one of the typed errors of this
// package. A nil error stays nil.
func Classify(op string, err error, msgs Messages) error {
	if err == nil {
		return nil
	}
	switch SQLState(err) {
	case CodeUniqueViolation:
		return &DuplicateEntryError{Message: orDefault(msgs.Duplicate, ErrDuplicateEntry), Err: err}
	case CodeForeignKeyViolation:
		return &ForeignKeyViolationError{Message: orDefault(msgs.ForeignKey, ErrForeignKeyViolation), Err: err}
	}
	return &DatabaseError{Op: op, Err: err}
}

func orDefault(msg string, sentinel error) string {
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
