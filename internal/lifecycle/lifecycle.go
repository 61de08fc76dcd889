// Package lifecycle implements the offer approval state machine. An
// offer always enters at PENDING; admins may move it to APPROVED or
// REJECTED from any state and back to PENDING only when it is not
// already pending. There is no terminal state and no timed transition.
// The package is pure: it validates inputs and transitions, it never
// touches the database.
package lifecycle

import (
	"errors"
	"time"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

// Initial is the status assigned to every newly created offer,
// regardless of what the client supplied.
const Initial = model.StatusPending

// Validation errors returned by ValidateContent.
var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrNegativeDiscount    = errors.New("discount must not be negative")
	ErrEndNotAfterStart    = errors.New("end date must be after start date")
	ErrEndNotFuture        = errors.New("end date must be in the future")
)

// Transition errors returned by CanSetStatus.
var (
	ErrUnknownStatus  = errors.New("unknown status")
	ErrAlreadyPending = errors.New("offer is already pending")
)

// ValidateContent checks the writable fields of an offer against the
// rules enforced at every create and edit. Stored rows can drift out
// of shape through direct edits, so the checks run at write time no
// matter who the caller is. The now argument is the submission time;
// callers pass time.Now().UTC().
func ValidateContent(title, description string, discount *float64, start, end, now time.Time) error {
	if title == "" {
		return ErrTitleRequired
	}
	if description == "" {
		return ErrDescriptionRequired
	}
	if discount != nil && *discount < 0 {
		return ErrNegativeDiscount
	}
	if !end.After(start) {
		return ErrEndNotAfterStart
	}
	if !end.After(now) {
		return ErrEndNotFuture
	}
	return nil
}

// CanSetStatus reports whether an offer currently in state current may
// be moved to next by an admin. APPROVED and REJECTED are reachable
// from any state. PENDING is only reachable when the offer is not
// already pending: resetting a pending offer is rejected rather than
// treated as a silent no-op.
func CanSetStatus(current, next model.OfferStatus) error {
	if !next.Valid() {
		return ErrUnknownStatus
	}
	if next == model.StatusPending && current == model.StatusPending {
		return ErrAlreadyPending
	}
	return nil
}
