package service

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPath     = errors.New("malformed task path")
	ErrStatusFetchFailed = errors.New("task status fetch failed")
	ErrNotFound          = errors.New("update not found")
	ErrUnauthorized      = errors.New("client verification failed")
	ErrInvalidAccess     = errors.New("invalid access")
	ErrClientNil         = errors.New("status client is nil")
	ErrCatalogNil        = errors.New("update catalog is nil")
)

// StatusFetchError reports a failed status lookup with the HTTP-style code
// and user-facing message the status page should show.
type StatusFetchError struct {
	Code    int
	Message string
	Err     error
}

func (e *StatusFetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %d %s", ErrStatusFetchFailed, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %d %s: %v", ErrStatusFetchFailed, e.Code, e.Message, e.Err)
}

func (e *StatusFetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStatusFetchFailed}
	}
	return []error{ErrStatusFetchFailed, e.Err}
}
