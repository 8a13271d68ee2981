// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrMissingCredential blocks a summary run before any edit or network call.
	ErrMissingCredential = errors.New("missing api credential")

	// ErrNoNotes means the lookback window resolved to zero notes.
	ErrNoNotes = errors.New("no notes found in window")

	// ErrTransport covers network failures and non-2xx responses from the
	// generation endpoint.
	ErrTransport = errors.New("summary transport failure")

	// ErrBadResponse means the generation endpoint answered without the
	// expected message content.
	ErrBadResponse = errors.New("malformed summary response")
)
