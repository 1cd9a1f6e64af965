package catalog

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrUnknownKind  = errors.New("unknown item kind")
	ErrMissingName  = errors.New("item name is required")
)
