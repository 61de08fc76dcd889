package service

import (
	"context"
	"errors"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/repository"
)

// Resolution is the outcome of resolving a session's role. MerchantID
// is set only when Role is RoleMerchant.
type Resolution struct {
	Role       model.Role
	MerchantID string
}

// RoleResolver computes the caller's role from two reads: membership
// in the admins set, then ownership of a merchant record. The result
// is a projection, never cached; it is recomputed on every request so
// that revoking an admin or deleting a merchant takes effect
// immediately.
type RoleResolver struct {
	admins    AdminStore
	merchants MerchantStore
}

func NewRoleResolver(admins AdminStore, merchants MerchantStore) *RoleResolver {
	return &RoleResolver{admins: admins, merchants: merchants}
}

// Resolve determines the role for userID. Admins take precedence: a
// user present in both sets resolves to ADMIN. A missing row in either
// set is not an error; an explicit read failure propagates wrapped in
// ErrPersistence and callers must treat the request as unauthenticated
// rather than crash.
func (r *RoleResolver) Resolve(ctx context.Context, userID string) (Resolution, error) {
	if userID == "" {
		return Resolution{Role: model.RoleNone}, nil
	}
	isAdmin, err := r.admins.IsAdmin(ctx, userID)
	if err != nil {
		return Resolution{Role: model.RoleNone}, persistenceErr("admin lookup", err)
	}
	if isAdmin {
		return Resolution{Role: model.RoleAdmin}, nil
	}
	m, err := r.merchants.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return Resolution{Role: model.RoleNone}, nil
		}
		return Resolution{Role: model.RoleNone}, persistenceErr("merchant lookup", err)
	}
	return Resolution{Role: model.RoleMerchant, MerchantID: m.ID}, nil
}
