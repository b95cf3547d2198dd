package domain

import (
	"errors"
	"strings"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidImageRef = errors.New("invalid image URL")
)

// ValidationError aggregates every field-level violation of a request,
// not just the first one. Error() joins the messages with ", " -- that
// joined string is the user-facing contract.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// StorageError wraps the object-storage provider's failure message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "Storage Error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
