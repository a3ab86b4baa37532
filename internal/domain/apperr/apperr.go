// Package apperr defines the error kinds shared by every domain package.
// Domain sentinels wrap one of the kinds so handlers can map them to a
// status with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("authentication failed")
	ErrDuplicate  = errors.New("duplicate")
	ErrStorage    = errors.New("storage failure")
)

// Validation builds an error that matches ErrValidation and carries a
// message that is safe to show to the caller.
func Validation(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Auth(format string, args ...any) error {
	return &kindError{kind: ErrAuth, msg: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) error {
	return &kindError{kind: ErrDuplicate, msg: fmt.Sprintf(format, args...)}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// StorageError wraps a driver failure. It matches ErrStorage but does not
// unwrap to the driver error, so callers cannot depend on driver types.
type StorageError struct {
	Op    string
	cause string
}

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, cause: err.Error()}
}

func (e *StorageError) Error() string {
	return e.Op + ": " + ErrStorage.Error() + ": " + e.cause
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// MissingFields reports the keys among required that are absent from present.
func MissingFields(present func(string) bool, required ...string) error {
	var missing []string
	for _, key := range required {
		if !present(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return Validation("missing required fields: %s", strings.Join(missing, ", "))
}

// PublicMessage returns err's text when it is safe to show, or fallback.
func PublicMessage(err error, fallback string) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return fallback
}
