// Package domain defines the error taxonomy shared by every layer of the
// ledger. Specific violations wrap one of the three kinds below, so callers
// can branch on either the exact error or its kind with errors.Is.
package domain

import "errors"

// Error kinds. Every error crossing a module boundary wraps exactly one.
var (
	// ErrValidation is returned when a domain invariant would be violated.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a referenced aggregate does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorage is returned when a store collaborator fails; it is distinct
	// from domain validation and is surfaced, not retried.
	ErrStorage = errors.New("storage error")
)
