package patterncore

import "errors"

var (
	// ErrInvalidWildcardKind is returned by Wildcard when kind is not one
	// of the four recognized wildcard kinds.
	ErrInvalidWildcardKind = errors.New("patterncore: invalid wildcard kind")

	// ErrPersistence wraps an underlying codec or I/O failure from Save
	// or Restore.
	ErrPersistence = errors.New("patterncore: persistence failure")
)
