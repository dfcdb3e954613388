package content

import "errors"

// Sentinel errors returned (wrapped) by the loaders and NewRegistry.
var (
	ErrEmptyTable       = errors.New("content: empty table")
	ErrMissingRequired  = errors.New("content: missing required entry")
	ErrUnknownID        = errors.New("content: unknown id")
	ErrDuplicateID      = errors.New("content: duplicate id")
	ErrInvalidField     = errors.New("content: invalid field")
	ErrUnknownMessageID = errors.New("content: unknown message id")
)
