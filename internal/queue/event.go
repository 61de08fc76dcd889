// Package queue defines message payloads exchanged over the message
// broker, the best-effort publisher and the background consumer.
package queue

// OfferStatusChangedEvent is published whenever an admin moves an
// offer between approval states. It carries enough information for
// downstream consumers to log or notify without querying the primary
// database.
type OfferStatusChangedEvent struct {
	OfferID      string `json:"offer_id"`
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
	Title        string `json:"title"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ChangedBy    string `json:"changed_by"` // user id of the acting admin
	ChangedAt    string `json:"changed_at"`
}
