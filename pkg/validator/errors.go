package validator

import "errors"

var (
	// ErrValidationFailed is matched by errors.Is on every error tree.
	ErrValidationFailed = errors.New("validation failed")

	// ErrZeroMultipleOf is raised when a multiple_of rule is declared with a zero divisor.
	ErrZeroMultipleOf = errors.New("validator: multiple_of divisor must not be zero")

	// ErrNegativeBound is raised when a length, items or properties bound is negative.
	ErrNegativeBound = errors.New("validator: bound must not be negative")

	// ErrNilPattern is raised when a pattern rule is declared without a compiled expression.
	ErrNilPattern = errors.New("validator: pattern must not be nil")

	// ErrInvalidPattern wraps regular expression compilation failures.
	ErrInvalidPattern = errors.New("validator: invalid pattern")

	// ErrNilSchema is raised when a container or nested field is declared without a schema.
	ErrNilSchema = errors.New("validator: schema must not be nil")

	// ErrNilFunc is raised when a custom rule or getter is nil.
	ErrNilFunc = errors.New("validator: function must not be nil")
)
