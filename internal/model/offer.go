package model

import "time"

// OfferStatus is the approval state of an offer. New offers always
// enter at PENDING; only admins move them to APPROVED or REJECTED or
// back to PENDING for re-review.
type OfferStatus string

const (
	StatusPending  OfferStatus = "PENDING"
	StatusApproved OfferStatus = "APPROVED"
	StatusRejected OfferStatus = "REJECTED"
)

// Valid reports whether s is one of the three known statuses.
func (s OfferStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Offer represents a promotional campaign belonging to exactly one
// merchant. Rows live in the `offers` table.
//
// Fields:
//  ID           - uuid primary key.
//  MerchantID   - owning merchants.id.
//  Title        - required short title.
//  Description  - required description text.
//  Discount     - optional non-negative percentage.
//  StartDate    - when the offer begins.
//  EndDate      - when the offer ends; strictly after StartDate and
//                 strictly in the future at submission time.
//  Conditions   - optional free-text fine print.
//  Status       - PENDING | APPROVED | REJECTED.
//  CreatedAt    - timestamp when the row was created.
//  MerchantName - joined merchants.name, populated only by list/detail
//                 queries for admin views; never written back.
type Offer struct {
	ID           string      // offers.id
	MerchantID   string      // offers.merchant_id
	Title        string      // offers.title
	Description  string      // offers.description
	Discount     *float64    // offers.discount (nullable)
	StartDate    time.Time   // offers.start_date
	EndDate      time.Time   // offers.end_date
	Conditions   *string     // offers.conditions (nullable)
	Status       OfferStatus // offers.status
	CreatedAt    time.Time   // offers.created_at
	MerchantName string      // merchants.name via join (read-only)
}
