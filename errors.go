package valid

import "errors"

var (
	// ErrInvalidConfig wraps configuration values the engine cannot use.
	ErrInvalidConfig = errors.New("valid: invalid configuration")

	// ErrLoadingMessages wraps failures to load message catalogues.
	ErrLoadingMessages = errors.New("valid: failed to load message catalogues")
)
