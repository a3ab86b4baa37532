package db

import (
	"errors"
	"fmt"
	"strings"

	"garments-api/internal/domain/apperr"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateError maps a driver or gorm error to an apperr kind. Unique
// violations become ErrDuplicate, foreign key violations ErrNotFound, and
// anything else a StorageError tagged with op.
func TranslateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateError(op)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return referenceError(op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return duplicateError(op)
		case pgForeignKeyViolation:
			return referenceError(op)
		}
	}

	// sqlite reports constraint failures by message when the dialect does
	// not translate them.
	message := err.Error()
	switch {
	case strings.Contains(message, "UNIQUE constraint failed"):
		return duplicateError(op)
	case strings.Contains(message, "FOREIGN KEY constraint failed"):
		return referenceError(op)
	}

	return apperr.Storage(op, err)
}

var (
	errRecordExists     = apperr.Duplicate("record already exists")
	errMissingReference = apperr.NotFound("referenced record does not exist")
)

// op stays in the error chain for logs; the public message does not name it.
func duplicateError(op string) error {
	return fmt.Errorf("%s: %w", op, errRecordExists)
}

func referenceError(op string) error {
	return fmt.Errorf("%s: %w", op, errMissingReference)
}
