package valid

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/valid/pkg/validator"
)

// FieldErrors lists failure messages by the JSON Pointer of the failing
// value. The root value uses the empty key.
// It's based on url.Values to leverage built-in string slice handling.
type FieldErrors url.Values

// NewFieldErrors creates an empty FieldErrors.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// FieldErrorsFrom flattens the error tree carried by err. It returns nil
// when err holds no tree.
func FieldErrorsFrom(err error) FieldErrors {
	tree, ok := validator.AsErrors(err)
	if !ok {
		return nil
	}
	fe := NewFieldErrors()
	for _, flat := range tree.Flatten() {
		fe.Add(flat.Path, flat.Message)
	}
	return fe
}

// Error implements the error interface.
// Returns a human-readable summary with the first message of each path.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		if messages := e[path]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", displayPath(path), messages[0]))
		}
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// Unwrap lets errors.Is match validator.ErrValidationFailed.
func (e FieldErrors) Unwrap() error {
	return validator.ErrValidationFailed
}

// Add adds an error message for a path.
func (e FieldErrors) Add(path, message string) {
	url.Values(e).Add(path, message)
}

// Get returns the first error message for a path.
func (e FieldErrors) Get(path string) string {
	return url.Values(e).Get(path)
}

// Has checks if a path has any errors.
func (e FieldErrors) Has(path string) bool {
	return len(e[path]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
