package store

import "errors"

// Common store errors
var (
	// ErrNotFound indicates the record key is absent from the collection
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a create hit an existing key; the stored
	// record is left untouched
	ErrAlreadyExists = errors.New("record already exists")
)
