package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrOther   ErrorCode = "OTHER"
	ErrDecode  ErrorCode = "DECODE_ERROR"
	ErrStorage ErrorCode = "STORAGE_ERROR"

	// Game specific errors
	ErrInvalidGame     ErrorCode = "INVALID_GAME"
	ErrInvalidCategory ErrorCode = "INVALID_CATEGORY"
	ErrGameNotFound    ErrorCode = "GAME_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or ErrOther.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrOther
}

// Sentinels usable with errors.Is: only the code is compared.
var (
	ErrKindInvalidGame     = &DomainError{Code: ErrInvalidGame}
	ErrKindInvalidCategory = &DomainError{Code: ErrInvalidCategory}
	ErrKindGameNotFound    = &DomainError{Code: ErrGameNotFound}
	ErrKindDecode          = &DomainError{Code: ErrDecode}
	ErrKindStorage         = &DomainError{Code: ErrStorage}
)

// Helper functions for common errors
func NewInvalidGameError(message string, err error) *DomainError {
	return NewError(ErrInvalidGame, message, err)
}

func NewInvalidCategoryError(name, message string) *DomainError {
	return NewError(ErrInvalidCategory, fmt.Sprintf("category %q: %s", name, message), nil)
}

func NewGameNotFoundError(ref string) *DomainError {
	return NewError(ErrGameNotFound, fmt.Sprintf("no game found matching %q", ref), nil)
}

func NewDecodeError(source string, err error) *DomainError {
	return NewError(ErrDecode, fmt.Sprintf("failed to decode %s", source), err)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorage, message, err)
}

// ValidationError describes one violation, addressed by a field path
// such as "categories[2].answers[0].question".
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(field, "is required")
}

func NewCountError(field string, got, want int) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("has %d entries, want exactly %d", got, want))
}

// ValidationErrors collects every violation found in one pass.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Err returns nil for an empty list, so callers can `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Prefix re-roots every field path under prefix.
func (v ValidationErrors) Prefix(prefix string) ValidationErrors {
	out := make(ValidationErrors, len(v))
	for i, e := range v {
		field := prefix
		if e.Field != "" {
			field = prefix + "." + e.Field
		}
		out[i] = NewValidationError(field, e.Message)
	}
	return out
}
