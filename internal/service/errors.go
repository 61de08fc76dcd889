// Package service implements the core operations behind the HTTP
// handlers: per-request role resolution, the offer approval workflow
// and merchant account management. Services depend on narrow store
// interfaces so the repository layer can be swapped for in-memory
// fakes in tests.
package service

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to handlers. Every service method returns
// either nil or an error wrapping exactly one of these sentinels, so
// the HTTP layer maps them with errors.Is:
//
//	ErrValidation  -> 400   malformed or missing input, nothing written
//	ErrForbidden   -> 403   role or ownership check failed
//	ErrNotFound    -> 404   target row absent
//	ErrConflict    -> 409   unique constraint collision (duplicate email)
//	ErrPersistence -> 500   the backing store failed
var (
	ErrValidation  = errors.New("validation failed")
	ErrForbidden   = errors.New("forbidden")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
)

func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func validationMsg(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
