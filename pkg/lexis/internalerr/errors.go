package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidWidth   = errors.New("invalid width")
	ErrEmptyMatch     = errors.New("no token-level match")
)
