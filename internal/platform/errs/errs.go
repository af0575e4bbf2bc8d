package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error (HTTP 500).
	Unknown Kind = iota
	// Validation indicates the caller supplied no usable content (HTTP 400).
	Validation
	// Internal indicates parsing or any other unexpected failure (HTTP 500).
	Internal
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// AppError carries a category, a log-only message, and the original cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of the first *AppError in err's chain, or Unknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}
