// Package policy holds the pure authorization rules gating every
// merchant and offer operation. Decisions depend only on the caller's
// resolved role, the caller's bound merchant id and the merchant id
// owning the target resource; the package performs no I/O.
package policy

import "github.com/iliyamo/merchant-offers-dashboard/internal/model"

// Action enumerates the operations the API can perform on merchants
// and offers.
type Action string

const (
	OfferCreate  Action = "offer:create"
	OfferRead    Action = "offer:read"
	OfferEdit    Action = "offer:edit"
	OfferSetStat Action = "offer:set_status"
	OfferDelete  Action = "offer:delete"
	OfferListAll Action = "offer:list_all"

	MerchantCreate Action = "merchant:create"
	MerchantRead   Action = "merchant:read"
	MerchantEdit   Action = "merchant:edit"
	MerchantDelete Action = "merchant:delete"
	MerchantList   Action = "merchant:list"
)

// Allow reports whether a caller with the given role and bound
// merchant id may perform action against a resource owned by
// ownerMerchantID. For actions without a target (create, list) the
// owner id is ignored and may be empty.
//
// Admins may do everything except delete an offer: deletion is
// reserved to the owning merchant. Merchants are confined to their own
// merchant record and their own offers; the caller's bound merchant id
// is authoritative and any client-supplied id is never consulted.
// Unrecognized callers may do nothing.
func Allow(role model.Role, merchantID string, action Action, ownerMerchantID string) bool {
	switch role {
	case model.RoleAdmin:
		return action != OfferDelete
	case model.RoleMerchant:
		if merchantID == "" {
			return false
		}
		switch action {
		case OfferCreate:
			return true
		case OfferRead, OfferEdit, OfferDelete:
			return ownerMerchantID == merchantID
		case MerchantRead, MerchantEdit:
			return ownerMerchantID == merchantID
		}
		return false
	default:
		return false
	}
}
