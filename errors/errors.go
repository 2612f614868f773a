// Package errors provides error handling for the Wikidata lookup client.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - errors.Is / errors.As compatible classification
//
// It also defines the sentinel errors the client uses to classify
// failures. Wrap these with Wrap()/Wrapf() to add context while
// preserving the type for Is() checks.
//
// Usage:
//
//	// Classify a failure while keeping the underlying cause
//	if err := send(req); err != nil {
//	    return errors.WrapRequestFailed(err, "send query")
//	}
//
//	// Check the class at the call site
//	if errors.IsNotFound(err) {
//	    // handle missing entity
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the lookup client's failure taxonomy.
// Use these with Is() for type-safe error checking.
// Wrap these with Wrap() to add context while preserving the type.
var (
	// ErrInvalidArgument indicates caller input was rejected before any
	// network call (empty search term, non-positive identifier).
	ErrInvalidArgument = New("invalid argument")

	// ErrNotFound indicates the endpoint returned zero rows for a
	// get-by-id lookup. A normal outcome for nonexistent identifiers.
	ErrNotFound = New("not found")

	// ErrRequestFailed indicates a transport-level failure or a
	// non-success HTTP status from the endpoint.
	ErrRequestFailed = New("request failed")

	// ErrBadResponse indicates the endpoint's response body could not
	// be decoded as SPARQL JSON results.
	ErrBadResponse = New("bad response")
)

// IsInvalidArgument checks if an error is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsRequestFailed checks if an error is or wraps ErrRequestFailed.
func IsRequestFailed(err error) bool {
	return err != nil && Is(err, ErrRequestFailed)
}

// IsBadResponse checks if an error is or wraps ErrBadResponse.
func IsBadResponse(err error) bool {
	return err != nil && Is(err, ErrBadResponse)
}

// WrapRequestFailed wraps an error as a request failure with context.
func WrapRequestFailed(err error, context string) error {
	return Wrap(Wrap(ErrRequestFailed, err.Error()), context)
}

// WrapBadResponse wraps an error as an undecodable response with context.
func WrapBadResponse(err error, context string) error {
	return Wrap(Wrap(ErrBadResponse, err.Error()), context)
}

// NewInvalidArgumentf creates an invalid-argument error with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidArgument, Newf(format, args...).Error())
}

// NewNotFoundf creates a not-found error with a formatted message.
func NewNotFoundf(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewRequestFailedf creates a request-failure error with a formatted message.
func NewRequestFailedf(format string, args ...interface{}) error {
	return Wrap(ErrRequestFailed, Newf(format, args...).Error())
}
