// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel error values shared across the
// repositories so higher layers can distinguish failure scenarios with
// errors.Is instead of inspecting driver error strings.
package repository

import "errors"

// ErrUserNotFound is returned when a user row cannot be found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an insert collides with the unique
// email constraint on the users table.
var ErrEmailExists = errors.New("email already exists")

// ErrMerchantNotFound is returned when a merchant row cannot be found.
var ErrMerchantNotFound = errors.New("merchant not found")

// ErrMerchantExists is returned when a user already owns a merchant
// record (unique user_id constraint).
var ErrMerchantExists = errors.New("user already owns a merchant")

// ErrOfferNotFound is returned when an offer row cannot be found, or
// when a merchant-scoped write matched no row.
var ErrOfferNotFound = errors.New("offer not found")
