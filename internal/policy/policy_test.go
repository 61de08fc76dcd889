package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

const (
	mineID  = "m-111"
	otherID = "m-222"
)

var allActions = []Action{
	OfferCreate, OfferRead, OfferEdit, OfferSetStat, OfferDelete, OfferListAll,
	MerchantCreate, MerchantRead, MerchantEdit, MerchantDelete, MerchantList,
}

// TestAllowCrossProduct exercises every (role, action, ownership)
// combination against the expected decision table.
func TestAllowCrossProduct(t *testing.T) {
	type key struct {
		role   model.Role
		action Action
		owner  string
	}
	// Everything not listed here is a deny.
	allowed := map[key]bool{}
	for _, a := range allActions {
		if a == OfferDelete {
			continue // admins never delete offers
		}
		allowed[key{model.RoleAdmin, a, mineID}] = true
		allowed[key{model.RoleAdmin, a, otherID}] = true
	}
	// Merchant: create always (scoped to own id by the service), own
	// offers and own record otherwise.
	allowed[key{model.RoleMerchant, OfferCreate, mineID}] = true
	allowed[key{model.RoleMerchant, OfferCreate, otherID}] = true
	for _, a := range []Action{OfferRead, OfferEdit, OfferDelete, MerchantRead, MerchantEdit} {
		allowed[key{model.RoleMerchant, a, mineID}] = true
	}

	for _, role := range []model.Role{model.RoleAdmin, model.RoleMerchant, model.RoleNone} {
		for _, action := range allActions {
			for _, owner := range []string{mineID, otherID} {
				want := allowed[key{role, action, owner}]
				got := Allow(role, mineID, action, owner)
				assert.Equal(t, want, got, "role=%s action=%s owner=%s", role, action, owner)
			}
		}
	}
}

// A merchant role without a bound merchant id can do nothing at all.
func TestAllowMerchantWithoutBinding(t *testing.T) {
	for _, action := range allActions {
		assert.False(t, Allow(model.RoleMerchant, "", action, mineID), "action=%s", action)
	}
}

// Unknown role strings behave like RoleNone.
func TestAllowUnknownRole(t *testing.T) {
	for _, action := range allActions {
		assert.False(t, Allow(model.Role("SUPERUSER"), mineID, action, mineID), "action=%s", action)
	}
}
